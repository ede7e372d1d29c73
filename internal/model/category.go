package model

import "time"

type Category struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_category_name" json:"name"`
	Color     string    `gorm:"type:varchar(7);default:'#3B82F6'" json:"color"`
	Icon      string    `gorm:"type:varchar(50);default:'target'" json:"icon"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
