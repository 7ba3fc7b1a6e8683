package profile

import "time"

type Profile struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	Location  *string   `gorm:"type:text" json:"location"`
	Website   *string   `gorm:"type:text" json:"website"`
	Avatar    *string   `gorm:"type:text" json:"avatar"`
	// UserID is set at creation and never reassigned through this API.
	UserID int `gorm:"uniqueIndex;not null" json:"userId"`
}

type CreateInput struct {
	Bio      *string
	Location *string
	Website  *string
	Avatar   *string
}

type UpdateInput struct {
	ID       int
	Bio      *string
	Location *string
	Website  *string
	Avatar   *string
}
