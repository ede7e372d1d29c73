package repository

import (
	"Habitude/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type HabitRepo interface {
	GetHabitById(ctx context.Context, id uint64) (*model.Habit, error)
	GetHabitsByUserId(ctx context.Context, userId uint64, active bool) ([]*model.Habit, error)
	GetActiveHabitByName(ctx context.Context, userId uint64, name string, excludeId uint64) (*model.Habit, error)
	CountActiveHabits(ctx context.Context, userIds []uint64) (map[uint64]int64, error)
	CreateHabit(ctx context.Context, habit *model.Habit) error
	UpdateHabit(ctx context.Context, habit *model.Habit) error
	DeactivateHabit(ctx context.Context, id uint64, userId uint64) (int64, error)
}

type HabitRepoImpl struct {
	db *gorm.DB
}

func NewHabitRepo(db *gorm.DB) HabitRepo {
	return &HabitRepoImpl{db: db}
}

func (s *HabitRepoImpl) GetHabitById(ctx context.Context, id uint64) (*model.Habit, error) {
	habit := &model.Habit{}
	result := s.db.WithContext(ctx).
		Preload("Category").
		First(habit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return habit, nil
}

func (s *HabitRepoImpl) GetHabitsByUserId(ctx context.Context, userId uint64, active bool) ([]*model.Habit, error) {
	habits := make([]*model.Habit, 0)
	result := s.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND is_active = ?", userId, active).
		Order("created_at desc").
		Find(&habits)
	if result.Error != nil {
		return nil, result.Error
	}
	return habits, nil
}

// GetActiveHabitByName 查找同名的启用习惯，用于同一用户下的重名检查
func (s *HabitRepoImpl) GetActiveHabitByName(ctx context.Context, userId uint64, name string, excludeId uint64) (*model.Habit, error) {
	habit := &model.Habit{}
	query := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND is_active = ?", userId, name, true)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	result := query.First(habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return habit, nil
}

// CountActiveHabits 批量统计每个用户的启用习惯数
func (s *HabitRepoImpl) CountActiveHabits(ctx context.Context, userIds []uint64) (map[uint64]int64, error) {
	type row struct {
		UserID uint64
		Cnt    int64
	}
	rows := make([]row, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Habit{}).
		Select("user_id, COUNT(*) AS cnt").
		Where("user_id IN ? AND is_active = ?", userIds, true).
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

func (s *HabitRepoImpl) CreateHabit(ctx context.Context, habit *model.Habit) error {
	return s.db.WithContext(ctx).Create(habit).Error
}

func (s *HabitRepoImpl) UpdateHabit(ctx context.Context, habit *model.Habit) error {
	return s.db.WithContext(ctx).
		Model(habit).
		Select("Name", "Description", "Frequency", "TargetCount", "CategoryID", "IsActive").
		Updates(habit).Error
}

// DeactivateHabit 软删除，返回影响行数供上层判断是否存在
func (s *HabitRepoImpl) DeactivateHabit(ctx context.Context, id uint64, userId uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Habit{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userId, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
