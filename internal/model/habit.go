package model

import (
	"time"
)

type Habit struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_user_id;index:idx_user_name,priority:1" json:"userId"`
	CategoryID  *uint64   `gorm:"index:idx_category_id" json:"categoryId"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_user_name,priority:2" json:"name"` // 同名仅约束启用中的习惯，索引不唯一
	Description *string   `gorm:"type:varchar(1000)" json:"description"`
	Frequency   string    `gorm:"type:varchar(10);not null;default:'daily'" json:"frequency"` // daily / weekly
	TargetCount int       `gorm:"not null;default:1" json:"targetCount"`
	IsActive    bool      `gorm:"type:tinyint(1);not null;default:1;index:idx_is_active" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}
