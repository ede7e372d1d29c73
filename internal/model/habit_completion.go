package model

import (
	"time"
)

// HabitCompletion 打卡事件，完成日期统一归一化到 UTC 零点，
// (habit_id, completion_date) 唯一索引保证同一天只能打卡一次
type HabitCompletion struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	HabitID        uint64    `gorm:"not null;uniqueIndex:idx_habit_date,priority:1" json:"habitId"`
	UserID         uint64    `gorm:"not null;index:idx_user_created,priority:1" json:"userId"`
	CompletionDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_date,priority:2" json:"completionDate"`
	Notes          *string   `gorm:"type:varchar(500)" json:"notes"`
	CreatedAt      time.Time `gorm:"index:idx_user_created,priority:2" json:"createdAt"`

	// 关联关系
	Habit Habit `gorm:"foreignKey:HabitID;references:ID" json:"-"`
	User  User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (HabitCompletion) TableName() string {
	return "habit_completions"
}
