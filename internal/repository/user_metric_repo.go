package repository

import (
	"Habitude/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserMetricRepo interface {
	SaveUserMetric(ctx context.Context, metric *model.UserMetric) error
	GetUserMetricsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.UserMetric, error)
}

type UserMetricRepoImpl struct {
	db *gorm.DB
}

func NewUserMetricRepo(db *gorm.DB) UserMetricRepo {
	return &UserMetricRepoImpl{db: db}
}

// SaveUserMetric 按 (user_id, metric_date) 幂等写入，快照任务可安全重跑
func (s *UserMetricRepoImpl) SaveUserMetric(ctx context.Context, metric *model.UserMetric) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"completions", "active_habits"}),
		}).
		Create(metric).Error
}

func (s *UserMetricRepoImpl) GetUserMetricsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.UserMetric, error) {
	metrics := make([]*model.UserMetric, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND metric_date >= ?", userID, since).
		Order("metric_date asc").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
