package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  *string   `gorm:"type:varchar(50);uniqueIndex:idx_username" json:"username"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex:idx_email" json:"-"`
	Password  *string   `gorm:"type:varchar(255)" json:"-"`
	FirstName string    `gorm:"type:varchar(50)" json:"firstName"`
	LastName  string    `gorm:"type:varchar(50)" json:"lastName"`
	AvatarURL string    `gorm:"type:varchar(512);column:avatar_url;default:'default_avatar.png'" json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
