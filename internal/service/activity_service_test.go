package service_test

import (
	"Habitude/internal/model"
	"Habitude/internal/service"
	"context"
	"errors"
	"testing"
	"time"
)

func newActivityService(followRepo *mockUserFollowRepo, completionRepo *mockCompletionRepo, habitRepo *mockHabitRepo, userRepo *mockUserRepo) service.ActivityService {
	if followRepo == nil {
		followRepo = &mockUserFollowRepo{}
	}
	if completionRepo == nil {
		completionRepo = &mockCompletionRepo{}
	}
	if habitRepo == nil {
		habitRepo = &mockHabitRepo{}
	}
	if userRepo == nil {
		userRepo = &mockUserRepo{}
	}
	return service.NewActivityService(followRepo, completionRepo, habitRepo, userRepo)
}

func leaderboardUsers(ids ...uint64) func(ctx context.Context, in []uint64) ([]*model.User, error) {
	return func(ctx context.Context, in []uint64) ([]*model.User, error) {
		users := make([]*model.User, 0, len(ids))
		for _, id := range ids {
			users = append(users, &model.User{ID: id, Username: strPtr("user")})
		}
		return users, nil
	}
}

func TestGetLeaderboardRanking(t *testing.T) {
	followRepo := &mockUserFollowRepo{
		getFollowingIds: func(ctx context.Context, userID uint64) ([]uint64, error) {
			return []uint64{2, 3}, nil
		},
	}
	habitRepo := &mockHabitRepo{
		countActiveHabits: func(ctx context.Context, userIds []uint64) (map[uint64]int64, error) {
			return map[uint64]int64{1: 2, 2: 1, 3: 3}, nil
		},
	}
	completionRepo := &mockCompletionRepo{
		countByUserIds: func(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error) {
			return map[uint64]int64{1: 3, 2: 3, 3: 7}, nil
		},
	}
	userRepo := &mockUserRepo{getUserByIds: leaderboardUsers(1, 2, 3)}
	svc := newActivityService(followRepo, completionRepo, habitRepo, userRepo)

	entries, err := svc.GetLeaderboard(context.Background(), 1, "week", 10)
	if err != nil {
		t.Fatalf("GetLeaderboard() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	// 打卡量第一，打卡量并列时启用习惯数多的在前
	if entries[0].UserID != 3 || entries[0].Rank != 1 {
		t.Errorf("entries[0] = {user %d rank %d}, want {user 3 rank 1}", entries[0].UserID, entries[0].Rank)
	}
	if entries[1].UserID != 1 || entries[1].Rank != 2 {
		t.Errorf("entries[1] = {user %d rank %d}, want {user 1 rank 2}", entries[1].UserID, entries[1].Rank)
	}
	if entries[2].UserID != 2 || entries[2].Rank != 3 {
		t.Errorf("entries[2] = {user %d rank %d}, want {user 2 rank 3}", entries[2].UserID, entries[2].Rank)
	}
	if !entries[1].IsCurrentUser {
		t.Errorf("entries[1].IsCurrentUser = false, want true")
	}
}

func TestGetLeaderboardSkipsUsersWithoutActiveHabits(t *testing.T) {
	followRepo := &mockUserFollowRepo{
		getFollowingIds: func(ctx context.Context, userID uint64) ([]uint64, error) {
			return []uint64{2}, nil
		},
	}
	habitRepo := &mockHabitRepo{
		countActiveHabits: func(ctx context.Context, userIds []uint64) (map[uint64]int64, error) {
			// 用户 2 没有启用习惯，历史打卡再多也不上榜
			return map[uint64]int64{1: 1}, nil
		},
	}
	completionRepo := &mockCompletionRepo{
		countByUserIds: func(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error) {
			return map[uint64]int64{1: 1, 2: 100}, nil
		},
	}
	userRepo := &mockUserRepo{getUserByIds: leaderboardUsers(1, 2)}
	svc := newActivityService(followRepo, completionRepo, habitRepo, userRepo)

	entries, err := svc.GetLeaderboard(context.Background(), 1, "all", 10)
	if err != nil {
		t.Fatalf("GetLeaderboard() error = %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != 1 {
		t.Fatalf("entries = %+v, want only user 1", entries)
	}
}

func TestGetLeaderboardRankBeforeTruncate(t *testing.T) {
	followRepo := &mockUserFollowRepo{
		getFollowingIds: func(ctx context.Context, userID uint64) ([]uint64, error) {
			return []uint64{2, 3}, nil
		},
	}
	habitRepo := &mockHabitRepo{
		countActiveHabits: func(ctx context.Context, userIds []uint64) (map[uint64]int64, error) {
			return map[uint64]int64{1: 1, 2: 1, 3: 1}, nil
		},
	}
	completionRepo := &mockCompletionRepo{
		countByUserIds: func(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error) {
			return map[uint64]int64{1: 1, 2: 5, 3: 3}, nil
		},
	}
	userRepo := &mockUserRepo{getUserByIds: leaderboardUsers(1, 2, 3)}
	svc := newActivityService(followRepo, completionRepo, habitRepo, userRepo)

	entries, err := svc.GetLeaderboard(context.Background(), 1, "month", 2)
	if err != nil {
		t.Fatalf("GetLeaderboard() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].UserID != 2 || entries[0].Rank != 1 {
		t.Errorf("entries[0] = {user %d rank %d}, want {user 2 rank 1}", entries[0].UserID, entries[0].Rank)
	}
	if entries[1].UserID != 3 || entries[1].Rank != 2 {
		t.Errorf("entries[1] = {user %d rank %d}, want {user 3 rank 2}", entries[1].UserID, entries[1].Rank)
	}
}

func TestGetLeaderboardDeduplicatesSelfEdge(t *testing.T) {
	var queried []uint64
	followRepo := &mockUserFollowRepo{
		getFollowingIds: func(ctx context.Context, userID uint64) ([]uint64, error) {
			// 脏数据里混入自关注边
			return []uint64{1, 2}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIds: func(ctx context.Context, ids []uint64) ([]*model.User, error) {
			queried = ids
			return []*model.User{}, nil
		},
	}
	svc := newActivityService(followRepo, nil, nil, userRepo)

	if _, err := svc.GetLeaderboard(context.Background(), 1, "week", 10); err != nil {
		t.Fatalf("GetLeaderboard() error = %v", err)
	}
	if len(queried) != 2 {
		t.Errorf("候选集 = %v, 自己应只出现一次", queried)
	}
}

func TestGetLeaderboardInvalidParams(t *testing.T) {
	svc := newActivityService(nil, nil, nil, nil)

	if _, err := svc.GetLeaderboard(context.Background(), 1, "year", 10); !errors.Is(err, service.ErrPeriodInvalid) {
		t.Errorf("period=year error = %v, want ErrPeriodInvalid", err)
	}
	if _, err := svc.GetLeaderboard(context.Background(), 1, "week", 0); !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("limit=0 error = %v, want ErrParamInvalid", err)
	}
}

func TestGetActivityFeedEmptyFollowing(t *testing.T) {
	called := false
	completionRepo := &mockCompletionRepo{
		getFeed: func(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error) {
			called = true
			return nil, nil
		},
	}
	svc := newActivityService(nil, completionRepo, nil, nil)

	items, err := svc.GetActivityFeed(context.Background(), 1, 20, 0)
	if err != nil {
		t.Fatalf("GetActivityFeed() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items = %v, want empty slice", items)
	}
	if called {
		t.Errorf("没有关注任何人时不应查询动态")
	}
}

func TestGetActivityFeedMapping(t *testing.T) {
	notes := "坚持住"
	completedAt := time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)
	followRepo := &mockUserFollowRepo{
		getFollowingIds: func(ctx context.Context, userID uint64) ([]uint64, error) {
			return []uint64{2}, nil
		},
	}
	completionRepo := &mockCompletionRepo{
		getFeed: func(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error) {
			return []*model.HabitCompletion{
				{
					ID:             7,
					HabitID:        10,
					UserID:         2,
					CompletionDate: date(2024, 1, 10),
					Notes:          &notes,
					CreatedAt:      completedAt,
					// 已停用的习惯，历史动态照常可见；分类可以为空
					Habit: model.Habit{ID: 10, Name: "冥想", Frequency: "daily", IsActive: false},
					User:  model.User{ID: 2, Username: strPtr("bob"), FirstName: "Bob"},
				},
			}, nil
		},
	}
	svc := newActivityService(followRepo, completionRepo, nil, nil)

	items, err := svc.GetActivityFeed(context.Background(), 1, 20, 0)
	if err != nil {
		t.Fatalf("GetActivityFeed() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}

	item := items[0]
	if item.ID != 7 {
		t.Errorf("ID = %d, want 7", item.ID)
	}
	if item.Habit.Name != "冥想" {
		t.Errorf("Habit.Name = %q, want 冥想", item.Habit.Name)
	}
	if item.Habit.Category != nil {
		t.Errorf("Habit.Category = %v, want nil", item.Habit.Category)
	}
	if item.User.UserID != 2 || *item.User.Username != "bob" {
		t.Errorf("User = %+v, want user 2 bob", item.User)
	}
	if item.Notes == nil || *item.Notes != notes {
		t.Errorf("Notes = %v, want %q", item.Notes, notes)
	}
	if !item.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", item.CompletedAt, completedAt)
	}
}

func TestGetActivityFeedInvalidParams(t *testing.T) {
	svc := newActivityService(nil, nil, nil, nil)

	if _, err := svc.GetActivityFeed(context.Background(), 1, 0, 0); !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("limit=0 error = %v, want ErrParamInvalid", err)
	}
	if _, err := svc.GetActivityFeed(context.Background(), 1, 20, -1); !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("offset=-1 error = %v, want ErrParamInvalid", err)
	}
}
