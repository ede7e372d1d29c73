package job

import (
	"Habitude/internal/pkg/logger"
	"Habitude/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// UserMetricJob 每日零点把前一天的打卡数落成用户快照
type UserMetricJob struct {
	userMetricsSvc service.UserMetricsService
}

func NewUserMetricJob(userMetricsSvc service.UserMetricsService) *UserMetricJob {
	return &UserMetricJob{userMetricsSvc: userMetricsSvc}
}

func (s *UserMetricJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// @daily 在零点触发，结算的是昨天
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	if err := s.userMetricsSvc.SnapshotDate(ctx, yesterday); err != nil {
		log.ErrorContext(ctx, "sync user metrics error", "err", err)
		return
	}
	log.InfoContext(ctx, "sync user metrics success", "date", yesterday.Format(time.DateOnly))
}
