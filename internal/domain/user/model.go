package user

type User struct {
	ID    int     `gorm:"primaryKey" json:"id"`
	Name  *string `gorm:"type:text" json:"name"`
	Email string  `gorm:"type:text;uniqueIndex;not null" json:"email"`
	// Password holds the bcrypt hash. It never leaves the API.
	Password string `gorm:"type:text;not null" json:"-"`
}
