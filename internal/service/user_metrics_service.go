package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/pkg/consts"
	"Habitude/internal/pkg/redis"
	"Habitude/internal/repository"
	"context"
	"time"

	log "log/slog"

	"github.com/google/uuid"
)

type UserMetricsService interface {
	GetUserMetricsBy7Days(ctx context.Context, userID uint64) (*dto.UserTrendDTO, error)
	GetUserMetricsBy30Days(ctx context.Context, userID uint64) (*dto.UserTrendDTO, error)
	SnapshotDate(ctx context.Context, date time.Time) error
}

type UserMetricsServiceImpl struct {
	userMetricRepo repository.UserMetricRepo
	completionRepo repository.HabitCompletionRepo
	habitRepo      repository.HabitRepo
}

func NewUserMetricsService(userMetricRepo repository.UserMetricRepo, completionRepo repository.HabitCompletionRepo, habitRepo repository.HabitRepo) UserMetricsService {
	return &UserMetricsServiceImpl{
		userMetricRepo: userMetricRepo,
		completionRepo: completionRepo,
		habitRepo:      habitRepo,
	}
}

func (s *UserMetricsServiceImpl) GetUserMetricsBy7Days(ctx context.Context, userID uint64) (*dto.UserTrendDTO, error) {
	return s.getUserMetrics(ctx, userID, 7)
}

func (s *UserMetricsServiceImpl) GetUserMetricsBy30Days(ctx context.Context, userID uint64) (*dto.UserTrendDTO, error) {
	return s.getUserMetrics(ctx, userID, 30)
}

// getUserMetrics 读取快照并按日补零，保证返回的序列恰好 days 个点。
// 快照只覆盖到昨天，今天以及漏跑的日子用打卡流水实时补齐
func (s *UserMetricsServiceImpl) getUserMetrics(ctx context.Context, userID uint64, days int) (*dto.UserTrendDTO, error) {
	today := midnightUTC(time.Now())
	since := today.AddDate(0, 0, -(days - 1))

	metrics, err := s.userMetricRepo.GetUserMetricsSince(ctx, userID, since)
	if err != nil {
		log.Error("获取用户打卡快照失败", "error", err, "user_id", userID)
		return nil, UnExpectedError
	}

	byDate := make(map[string]int, len(metrics))
	for _, metric := range metrics {
		byDate[metric.MetricDate.UTC().Format(time.DateOnly)] = metric.Completions
	}

	live, err := s.completionRepo.CountDailyByUser(ctx, userID, since)
	if err != nil {
		log.Error("实时统计用户打卡失败", "error", err, "user_id", userID)
		return nil, UnExpectedError
	}

	list := make([]*dto.UserMetricDTO, 0, days)
	for i := 0; i < days; i++ {
		d := since.AddDate(0, 0, i).Format(time.DateOnly)
		value, snapshotted := byDate[d]
		if !snapshotted {
			value = int(live[d])
		}
		list = append(list, &dto.UserMetricDTO{
			Date:  d,
			Value: value,
		})
	}

	return &dto.UserTrendDTO{
		UserID: userID,
		Days:   days,
		List:   list,
	}, nil
}

// SnapshotDate 将指定完成日期的打卡数落成快照，定时任务每日调用，可安全重跑。
// 分布式锁保证多实例部署时同一天只跑一次。
func (s *UserMetricsServiceImpl) SnapshotDate(ctx context.Context, date time.Time) error {
	date = midnightUTC(date)
	lockKey := consts.UserMetricDailyLock + date.Format(time.DateOnly)
	lockValue := uuid.New().String()

	locked, err := redis.TryLock(ctx, lockKey, lockValue, time.Hour, 1)
	if err != nil {
		log.Error("获取快照任务锁失败", "error", err, "date", date)
		return err
	}
	if !locked {
		log.Info("快照任务已在其他实例运行，跳过", "date", date)
		return nil
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	counts, err := s.completionRepo.CountByDate(ctx, date)
	if err != nil {
		log.Error("统计当日打卡失败", "error", err, "date", date)
		return err
	}
	if len(counts) == 0 {
		return nil
	}

	userIds := make([]uint64, 0, len(counts))
	for userID := range counts {
		userIds = append(userIds, userID)
	}
	activeHabits, err := s.habitRepo.CountActiveHabits(ctx, userIds)
	if err != nil {
		log.Error("统计启用习惯数失败", "error", err, "date", date)
		return err
	}

	for userID, cnt := range counts {
		metric := &model.UserMetric{
			UserID:       userID,
			MetricDate:   date,
			Completions:  int(cnt),
			ActiveHabits: int(activeHabits[userID]),
		}
		if err := s.userMetricRepo.SaveUserMetric(ctx, metric); err != nil {
			log.Error("保存用户打卡快照失败", "error", err, "user_id", userID, "date", date)
			return err
		}
	}
	log.Info("用户打卡快照完成", "date", date, "users", len(counts))
	return nil
}
