package dto

import "time"

// FollowUserDTO 关注/粉丝列表项，IsFollowingBack 仅在粉丝列表中有意义
type FollowUserDTO struct {
	UserID          uint64    `json:"id"`
	Username        *string   `json:"username"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	AvatarURL       string    `json:"avatarUrl"`
	FollowedAt      time.Time `json:"followedAt"`
	IsFollowingBack *bool     `json:"isFollowingBack,omitempty"`
}

// LeaderboardEntryDTO 排行榜条目
type LeaderboardEntryDTO struct {
	UserID           uint64  `json:"id"`
	Username         *string `json:"username"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	AvatarURL        string  `json:"avatarUrl"`
	TotalCompletions int64   `json:"totalCompletions"`
	ActiveHabits     int64   `json:"activeHabits"`
	IsCurrentUser    bool    `json:"isCurrentUser"`
	Rank             int     `json:"rank"`
}

// FeedHabitDTO 动态中的习惯快照
type FeedHabitDTO struct {
	Name      string       `json:"name"`
	Frequency string       `json:"frequency"`
	Category  *CategoryDTO `json:"category"`
}

// FeedUserDTO 动态中的用户公开信息
type FeedUserDTO struct {
	UserID    uint64  `json:"id"`
	Username  *string `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL string  `json:"avatarUrl"`
}

// FeedItemDTO 动态流条目
type FeedItemDTO struct {
	ID             uint64       `json:"id"`
	CompletionDate time.Time    `json:"completionDate"`
	CompletedAt    time.Time    `json:"completedAt"`
	Notes          *string      `json:"notes"`
	Habit          FeedHabitDTO `json:"habit"`
	User           FeedUserDTO  `json:"user"`
}
