package dto

import "time"

// HabitBaseDTO 创建/编辑习惯
type HabitBaseDTO struct {
	Name        string  `json:"name" binding:"required" validate:"min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Frequency   string  `json:"frequency" binding:"required" validate:"oneof=daily weekly"`
	TargetCount int     `json:"targetCount" validate:"omitempty,min=1,max=10"`
	CategoryID  *uint64 `json:"categoryId,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CategoryDTO 分类
type CategoryDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// HabitStatsDTO 单个习惯的打卡统计
type HabitStatsDTO struct {
	TotalCompletions int64      `json:"totalCompletions"`
	WeekCompletions  int64      `json:"weekCompletions"`
	LastCompletion   *time.Time `json:"lastCompletion"`
}

// HabitDTO 习惯及其统计信息
type HabitDTO struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Frequency   string         `json:"frequency"`
	TargetCount int            `json:"targetCount"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Category    *CategoryDTO   `json:"category"`
	Stats       *HabitStatsDTO `json:"stats,omitempty"`
}

// CompletionDTO 一次打卡记录
type CompletionDTO struct {
	ID             uint64    `json:"id"`
	CompletionDate time.Time `json:"completionDate"`
	CompletedAt    time.Time `json:"completedAt"`
	Notes          *string   `json:"notes"`
}

// HabitDetailDTO 习惯详情，含近 30 天打卡历史与当前连击
type HabitDetailDTO struct {
	HabitDTO
	Completions   []*CompletionDTO `json:"completions"`
	CurrentStreak int              `json:"currentStreak"`
}

// CheckInDTO 打卡请求，date 缺省为今天，格式 2006-01-02
type CheckInDTO struct {
	Date  *string `json:"date,omitempty"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
