package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/repository"
	"context"
	"sort"
	"time"
)

type ActivityService interface {
	GetLeaderboard(ctx context.Context, viewerId uint64, period string, limit int) ([]*dto.LeaderboardEntryDTO, error)
	GetActivityFeed(ctx context.Context, viewerId uint64, limit, offset int) ([]*dto.FeedItemDTO, error)
}

type ActivityServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	completionRepo repository.HabitCompletionRepo
	habitRepo      repository.HabitRepo
	userRepo       repository.UserRepo
}

func NewActivityService(
	userFollowRepo repository.UserFollowRepo,
	completionRepo repository.HabitCompletionRepo,
	habitRepo repository.HabitRepo,
	userRepo repository.UserRepo,
) ActivityService {
	return &ActivityServiceImpl{
		userFollowRepo: userFollowRepo,
		completionRepo: completionRepo,
		habitRepo:      habitRepo,
		userRepo:       userRepo,
	}
}

// GetLeaderboard 对"自己 + 关注的人"按窗口内打卡量排名。
// 流水线按固定顺序执行：圈定候选集 → 批量取数 → 过滤无启用习惯的用户 →
// 排序 → 全量定名次 → 截断。并列名次按排序位置顺延，不共享名次
func (s *ActivityServiceImpl) GetLeaderboard(ctx context.Context, viewerId uint64, period string, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		return nil, ErrParamInvalid
	}
	since, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	followingIds, err := s.userFollowRepo.GetFollowingIds(ctx, viewerId)
	if err != nil {
		return nil, err
	}

	// 候选集去重，脏数据导致的自关注边也不会让自己出现两次
	seen := map[uint64]struct{}{viewerId: {}}
	candidateIds := []uint64{viewerId}
	for _, id := range followingIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidateIds = append(candidateIds, id)
	}

	users, err := s.userRepo.GetUserByIds(ctx, candidateIds)
	if err != nil {
		return nil, err
	}
	habitCounts, err := s.habitRepo.CountActiveHabits(ctx, candidateIds)
	if err != nil {
		return nil, err
	}
	completionCounts, err := s.completionRepo.CountByUserIds(ctx, candidateIds, since)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(users))
	for _, user := range users {
		activeHabits := habitCounts[user.ID]
		if activeHabits == 0 {
			// 没有启用习惯的用户不上榜，历史打卡再多也一样
			continue
		}
		entries = append(entries, &dto.LeaderboardEntryDTO{
			UserID:           user.ID,
			Username:         user.Username,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
			AvatarURL:        user.AvatarURL,
			TotalCompletions: completionCounts[user.ID],
			ActiveHabits:     activeHabits,
			IsCurrentUser:    user.ID == viewerId,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalCompletions != entries[j].TotalCompletions {
			return entries[i].TotalCompletions > entries[j].TotalCompletions
		}
		if entries[i].ActiveHabits != entries[j].ActiveHabits {
			return entries[i].ActiveHabits > entries[j].ActiveHabits
		}
		return entries[i].UserID < entries[j].UserID
	})

	// 先对全量排序结果定名次，再截断
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// GetActivityFeed 获取关注用户最近 7 天的打卡动态，窗口按记录时间而非完成日期。
// 习惯/分类/用户信息在查询时联表取出，习惯被停用后历史动态仍然可见
func (s *ActivityServiceImpl) GetActivityFeed(ctx context.Context, viewerId uint64, limit, offset int) ([]*dto.FeedItemDTO, error) {
	if limit <= 0 || offset < 0 {
		return nil, ErrParamInvalid
	}

	followingIds, err := s.userFollowRepo.GetFollowingIds(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	if len(followingIds) == 0 {
		return []*dto.FeedItemDTO{}, nil
	}

	since := time.Now().AddDate(0, 0, -7)
	completions, err := s.completionRepo.GetFeed(ctx, followingIds, since, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FeedItemDTO, 0, len(completions))
	for _, completion := range completions {
		items = append(items, &dto.FeedItemDTO{
			ID:             completion.ID,
			CompletionDate: completion.CompletionDate,
			CompletedAt:    completion.CreatedAt,
			Notes:          completion.Notes,
			Habit: dto.FeedHabitDTO{
				Name:      completion.Habit.Name,
				Frequency: completion.Habit.Frequency,
				Category:  categoryToDTO(completion.Habit.Category),
			},
			User: dto.FeedUserDTO{
				UserID:    completion.User.ID,
				Username:  completion.User.Username,
				FirstName: completion.User.FirstName,
				LastName:  completion.User.LastName,
				AvatarURL: completion.User.AvatarURL,
			},
		})
	}
	return items, nil
}
