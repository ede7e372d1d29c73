package service_test

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newHabitService(habitRepo *mockHabitRepo, completionRepo *mockCompletionRepo, categoryRepo *mockCategoryRepo) service.HabitService {
	if habitRepo == nil {
		habitRepo = &mockHabitRepo{}
	}
	if completionRepo == nil {
		completionRepo = &mockCompletionRepo{}
	}
	if categoryRepo == nil {
		categoryRepo = &mockCategoryRepo{}
	}
	return service.NewHabitService(habitRepo, completionRepo, categoryRepo)
}

func ownedHabit(id, userId uint64, active bool) *model.Habit {
	return &model.Habit{
		ID:        id,
		UserID:    userId,
		Name:      "晨跑",
		Frequency: "daily",
		IsActive:  active,
	}
}

func TestCheckInNormalizesDate(t *testing.T) {
	var created *model.HabitCompletion
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	completionRepo := &mockCompletionRepo{
		createCompletion: func(ctx context.Context, completion *model.HabitCompletion) error {
			created = completion
			return nil
		},
	}
	svc := newHabitService(habitRepo, completionRepo, nil)

	dateStr := "2024-01-10"
	result, err := svc.CheckIn(context.Background(), 1, 10, &dto.CheckInDTO{Date: &dateStr})
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !created.CompletionDate.Equal(want) {
		t.Errorf("CompletionDate = %v, want %v", created.CompletionDate, want)
	}
	if !result.CompletionDate.Equal(want) {
		t.Errorf("result CompletionDate = %v, want %v", result.CompletionDate, want)
	}
}

func TestCheckInDuplicate(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	completionRepo := &mockCompletionRepo{
		createCompletion: func(ctx context.Context, completion *model.HabitCompletion) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := newHabitService(habitRepo, completionRepo, nil)

	_, err := svc.CheckIn(context.Background(), 1, 10, &dto.CheckInDTO{})
	if !errors.Is(err, service.ErrCompletionExist) {
		t.Errorf("CheckIn() error = %v, want ErrCompletionExist", err)
	}
}

func TestCheckInInactiveHabit(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, false), nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	_, err := svc.CheckIn(context.Background(), 1, 10, &dto.CheckInDTO{})
	if !errors.Is(err, service.ErrHabitNotFound) {
		t.Errorf("CheckIn() error = %v, want ErrHabitNotFound", err)
	}
}

func TestCheckInOthersHabit(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 2, true), nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	_, err := svc.CheckIn(context.Background(), 1, 10, &dto.CheckInDTO{})
	if !errors.Is(err, service.ErrHabitNotFound) {
		t.Errorf("CheckIn() error = %v, want ErrHabitNotFound", err)
	}
}

func TestCheckInInvalidDate(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	badDate := "01/10/2024"
	_, err := svc.CheckIn(context.Background(), 1, 10, &dto.CheckInDTO{Date: &badDate})
	if !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("CheckIn() error = %v, want ErrParamInvalid", err)
	}
}

func TestRemoveCheckInNotFound(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	completionRepo := &mockCompletionRepo{
		deleteCompletion: func(ctx context.Context, habitId, userId uint64, date time.Time) (int64, error) {
			return 0, nil
		},
	}
	svc := newHabitService(habitRepo, completionRepo, nil)

	dateStr := "2024-01-10"
	err := svc.RemoveCheckIn(context.Background(), 1, 10, &dateStr)
	if !errors.Is(err, service.ErrCompletionNotFound) {
		t.Errorf("RemoveCheckIn() error = %v, want ErrCompletionNotFound", err)
	}
}

func TestCreateHabitNameConflict(t *testing.T) {
	habitRepo := &mockHabitRepo{
		getActiveHabitByName: func(ctx context.Context, userId uint64, name string, excludeId uint64) (*model.Habit, error) {
			return &model.Habit{ID: 99, UserID: userId, Name: name}, nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	_, err := svc.CreateHabit(context.Background(), 1, &dto.HabitBaseDTO{Name: "晨跑", Frequency: "daily"})
	if !errors.Is(err, service.ErrHabitNameExist) {
		t.Errorf("CreateHabit() error = %v, want ErrHabitNameExist", err)
	}
}

func TestCreateHabitUnknownCategory(t *testing.T) {
	categoryId := uint64(42)
	categoryRepo := &mockCategoryRepo{
		getCategoryById: func(ctx context.Context, id uint64) (*model.Category, error) {
			return nil, nil
		},
	}
	svc := newHabitService(nil, nil, categoryRepo)

	_, err := svc.CreateHabit(context.Background(), 1, &dto.HabitBaseDTO{
		Name:       "晨跑",
		Frequency:  "daily",
		CategoryID: &categoryId,
	})
	if !errors.Is(err, service.ErrCategoryNotFound) {
		t.Errorf("CreateHabit() error = %v, want ErrCategoryNotFound", err)
	}
}

func TestCreateHabitDefaultTargetCount(t *testing.T) {
	var created *model.Habit
	habitRepo := &mockHabitRepo{
		createHabit: func(ctx context.Context, habit *model.Habit) error {
			created = habit
			return nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	_, err := svc.CreateHabit(context.Background(), 1, &dto.HabitBaseDTO{Name: "晨跑", Frequency: "daily"})
	if err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	if created.TargetCount != 1 {
		t.Errorf("TargetCount = %d, want 1", created.TargetCount)
	}
	if !created.IsActive {
		t.Errorf("IsActive = false, want true")
	}
	if created.UserID != 1 {
		t.Errorf("UserID = %d, want 1", created.UserID)
	}
}

func TestDeleteHabitNotFound(t *testing.T) {
	habitRepo := &mockHabitRepo{
		deactivateHabit: func(ctx context.Context, id uint64, userId uint64) (int64, error) {
			return 0, nil
		},
	}
	svc := newHabitService(habitRepo, nil, nil)

	err := svc.DeleteHabit(context.Background(), 1, 10)
	if !errors.Is(err, service.ErrHabitNotFound) {
		t.Errorf("DeleteHabit() error = %v, want ErrHabitNotFound", err)
	}
}

func TestGetHabitStats(t *testing.T) {
	last := date(2024, 1, 10)
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	completionRepo := &mockCompletionRepo{
		countByHabit: func(ctx context.Context, habitId uint64, since *time.Time) (int64, error) {
			if since == nil {
				return 25, nil
			}
			return 5, nil
		},
		getLastCompletionDate: func(ctx context.Context, habitId uint64) (*time.Time, error) {
			return &last, nil
		},
	}
	svc := newHabitService(habitRepo, completionRepo, nil)

	stats, err := svc.GetHabitStats(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetHabitStats() error = %v", err)
	}
	if stats.TotalCompletions != 25 {
		t.Errorf("TotalCompletions = %d, want 25", stats.TotalCompletions)
	}
	if stats.WeekCompletions != 5 {
		t.Errorf("WeekCompletions = %d, want 5", stats.WeekCompletions)
	}
	if stats.LastCompletion == nil || !stats.LastCompletion.Equal(last) {
		t.Errorf("LastCompletion = %v, want %v", stats.LastCompletion, last)
	}
}

func TestGetCurrentStreakFromHistory(t *testing.T) {
	today := time.Now().UTC()
	habitRepo := &mockHabitRepo{
		getHabitById: func(ctx context.Context, id uint64) (*model.Habit, error) {
			return ownedHabit(id, 1, true), nil
		},
	}
	completionRepo := &mockCompletionRepo{
		getHistory: func(ctx context.Context, habitId uint64, since *time.Time) ([]*model.HabitCompletion, error) {
			mk := func(daysAgo int) *model.HabitCompletion {
				d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
				return &model.HabitCompletion{HabitID: habitId, CompletionDate: d}
			}
			return []*model.HabitCompletion{mk(0), mk(1), mk(3)}, nil
		},
	}
	svc := newHabitService(habitRepo, completionRepo, nil)

	streak, err := svc.GetCurrentStreak(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetCurrentStreak() error = %v", err)
	}
	if streak != 2 {
		t.Errorf("GetCurrentStreak() = %d, want 2", streak)
	}
}
