package repository

import (
	"Habitude/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type HabitCompletionRepo interface {
	CreateCompletion(ctx context.Context, completion *model.HabitCompletion) error
	DeleteCompletion(ctx context.Context, habitId, userId uint64, date time.Time) (int64, error)
	GetHistory(ctx context.Context, habitId uint64, since *time.Time) ([]*model.HabitCompletion, error)
	CountByHabit(ctx context.Context, habitId uint64, since *time.Time) (int64, error)
	GetLastCompletionDate(ctx context.Context, habitId uint64) (*time.Time, error)
	CountByUserIds(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error)
	CountByDate(ctx context.Context, date time.Time) (map[uint64]int64, error)
	CountDailyByUser(ctx context.Context, userId uint64, since time.Time) (map[string]int64, error)
	GetFeed(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error)
}

type HabitCompletionRepoImpl struct {
	db *gorm.DB
}

func NewHabitCompletionRepo(db *gorm.DB) HabitCompletionRepo {
	return &HabitCompletionRepoImpl{db: db}
}

// CreateCompletion 直接插入，(habit_id, completion_date) 唯一索引兜底并发打卡，
// 冲突由数据库返回 gorm.ErrDuplicatedKey，上层翻译成业务错误
func (s *HabitCompletionRepoImpl) CreateCompletion(ctx context.Context, completion *model.HabitCompletion) error {
	return s.db.WithContext(ctx).Create(completion).Error
}

func (s *HabitCompletionRepoImpl) DeleteCompletion(ctx context.Context, habitId, userId uint64, date time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ? AND completion_date = ?", habitId, userId, date).
		Delete(&model.HabitCompletion{})
	return result.RowsAffected, result.Error
}

// GetHistory 获取单个习惯的打卡历史，按完成日期倒序
func (s *HabitCompletionRepoImpl) GetHistory(ctx context.Context, habitId uint64, since *time.Time) ([]*model.HabitCompletion, error) {
	completions := make([]*model.HabitCompletion, 0)
	query := s.db.WithContext(ctx).
		Where("habit_id = ?", habitId)
	if since != nil {
		query = query.Where("completion_date >= ?", *since)
	}
	result := query.
		Order("completion_date desc").
		Find(&completions)
	if result.Error != nil {
		return nil, result.Error
	}
	return completions, nil
}

func (s *HabitCompletionRepoImpl) CountByHabit(ctx context.Context, habitId uint64, since *time.Time) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.HabitCompletion{}).
		Where("habit_id = ?", habitId)
	if since != nil {
		query = query.Where("completion_date >= ?", *since)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *HabitCompletionRepoImpl) GetLastCompletionDate(ctx context.Context, habitId uint64) (*time.Time, error) {
	completion := &model.HabitCompletion{}
	result := s.db.WithContext(ctx).
		Where("habit_id = ?", habitId).
		Order("completion_date desc").
		First(completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &completion.CompletionDate, nil
}

// CountByUserIds 批量统计每个用户在窗口内的打卡数，since 为 nil 表示不限时间
func (s *HabitCompletionRepoImpl) CountByUserIds(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error) {
	type row struct {
		UserID uint64
		Cnt    int64
	}
	rows := make([]row, 0)
	query := s.db.WithContext(ctx).
		Model(&model.HabitCompletion{}).
		Select("user_id, COUNT(*) AS cnt").
		Where("user_id IN ?", userIds)
	if since != nil {
		query = query.Where("completion_date >= ?", *since)
	}
	result := query.Group("user_id").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Cnt
	}
	return counts, nil
}

// CountByDate 统计某个完成日期所有用户的打卡数，由每日快照任务使用
func (s *HabitCompletionRepoImpl) CountByDate(ctx context.Context, date time.Time) (map[uint64]int64, error) {
	type row struct {
		UserID uint64
		Cnt    int64
	}
	rows := make([]row, 0)
	result := s.db.WithContext(ctx).
		Model(&model.HabitCompletion{}).
		Select("user_id, COUNT(*) AS cnt").
		Where("completion_date = ?", date).
		Group("user_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Cnt
	}
	return counts, nil
}

// CountDailyByUser 按完成日期统计单个用户在窗口内每天的打卡数，供趋势接口实时计算
func (s *HabitCompletionRepoImpl) CountDailyByUser(ctx context.Context, userId uint64, since time.Time) (map[string]int64, error) {
	type row struct {
		CompletionDate time.Time
		Cnt            int64
	}
	rows := make([]row, 0)
	result := s.db.WithContext(ctx).
		Model(&model.HabitCompletion{}).
		Select("completion_date, COUNT(*) AS cnt").
		Where("user_id = ? AND completion_date >= ?", userId, since).
		Group("completion_date").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.CompletionDate.UTC().Format(time.DateOnly)] = r.Cnt
	}
	return counts, nil
}

// GetFeed 获取关注用户最近的打卡动态，按记录时间倒序分页，
// 连带习惯、分类、用户快照一并取出，已停用的习惯也照常出现
func (s *HabitCompletionRepoImpl) GetFeed(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error) {
	completions := make([]*model.HabitCompletion, 0)
	result := s.db.WithContext(ctx).
		Preload("Habit").
		Preload("Habit.Category").
		Preload("User").
		Where("user_id IN ? AND created_at >= ?", userIds, since).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&completions)
	if result.Error != nil {
		return nil, result.Error
	}
	return completions, nil
}
