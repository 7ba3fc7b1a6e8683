package tweet

import "time"

type Tweet struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  int       `gorm:"index;not null" json:"authorId"`
}
