package model

import "time"

// UserMetric 每日打卡快照，由定时任务生成，用于仪表盘趋势图
type UserMetric struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_user_date,priority:1" json:"userId"`
	MetricDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date,priority:2" json:"metricDate"`
	Completions  int       `gorm:"not null;default:0" json:"completions"`
	ActiveHabits int       `gorm:"not null;default:0" json:"activeHabits"`
	CreatedAt    time.Time `json:"-"`
}

func (UserMetric) TableName() string {
	return "user_metrics"
}
