package service_test

import (
	"Habitude/internal/model"
	"context"
	"time"
)

// 手写 mock 仓储，按需覆盖函数字段，未覆盖的方法返回零值

type mockUserRepo struct {
	getUserById     func(ctx context.Context, id uint64) (*model.User, error)
	getUserByIds    func(ctx context.Context, ids []uint64) ([]*model.User, error)
	getUserByName   func(ctx context.Context, username string) (*model.User, error)
	getUserByEmail  func(ctx context.Context, email string) (*model.User, error)
	createUser      func(ctx context.Context, user *model.User) error
	updateUser      func(ctx context.Context, user *model.User) error
	searchUsersFunc func(ctx context.Context, keyword string, excludeId uint64, limit int) ([]*model.User, error)
}

func (m *mockUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	if m.getUserById == nil {
		return nil, nil
	}
	return m.getUserById(ctx, id)
}

func (m *mockUserRepo) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	if m.getUserByIds == nil {
		return []*model.User{}, nil
	}
	return m.getUserByIds(ctx, ids)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getUserByName == nil {
		return nil, nil
	}
	return m.getUserByName(ctx, username)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getUserByEmail == nil {
		return nil, nil
	}
	return m.getUserByEmail(ctx, email)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if m.createUser == nil {
		return nil
	}
	return m.createUser(ctx, user)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	if m.updateUser == nil {
		return nil
	}
	return m.updateUser(ctx, user)
}

func (m *mockUserRepo) SearchUsers(ctx context.Context, keyword string, excludeId uint64, limit int) ([]*model.User, error) {
	if m.searchUsersFunc == nil {
		return []*model.User{}, nil
	}
	return m.searchUsersFunc(ctx, keyword, excludeId, limit)
}

type mockHabitRepo struct {
	getHabitById         func(ctx context.Context, id uint64) (*model.Habit, error)
	getHabitsByUserId    func(ctx context.Context, userId uint64, active bool) ([]*model.Habit, error)
	getActiveHabitByName func(ctx context.Context, userId uint64, name string, excludeId uint64) (*model.Habit, error)
	countActiveHabits    func(ctx context.Context, userIds []uint64) (map[uint64]int64, error)
	createHabit          func(ctx context.Context, habit *model.Habit) error
	updateHabit          func(ctx context.Context, habit *model.Habit) error
	deactivateHabit      func(ctx context.Context, id uint64, userId uint64) (int64, error)
}

func (m *mockHabitRepo) GetHabitById(ctx context.Context, id uint64) (*model.Habit, error) {
	if m.getHabitById == nil {
		return nil, nil
	}
	return m.getHabitById(ctx, id)
}

func (m *mockHabitRepo) GetHabitsByUserId(ctx context.Context, userId uint64, active bool) ([]*model.Habit, error) {
	if m.getHabitsByUserId == nil {
		return []*model.Habit{}, nil
	}
	return m.getHabitsByUserId(ctx, userId, active)
}

func (m *mockHabitRepo) GetActiveHabitByName(ctx context.Context, userId uint64, name string, excludeId uint64) (*model.Habit, error) {
	if m.getActiveHabitByName == nil {
		return nil, nil
	}
	return m.getActiveHabitByName(ctx, userId, name, excludeId)
}

func (m *mockHabitRepo) CountActiveHabits(ctx context.Context, userIds []uint64) (map[uint64]int64, error) {
	if m.countActiveHabits == nil {
		return map[uint64]int64{}, nil
	}
	return m.countActiveHabits(ctx, userIds)
}

func (m *mockHabitRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if m.createHabit == nil {
		return nil
	}
	return m.createHabit(ctx, habit)
}

func (m *mockHabitRepo) UpdateHabit(ctx context.Context, habit *model.Habit) error {
	if m.updateHabit == nil {
		return nil
	}
	return m.updateHabit(ctx, habit)
}

func (m *mockHabitRepo) DeactivateHabit(ctx context.Context, id uint64, userId uint64) (int64, error) {
	if m.deactivateHabit == nil {
		return 0, nil
	}
	return m.deactivateHabit(ctx, id, userId)
}

type mockCompletionRepo struct {
	createCompletion      func(ctx context.Context, completion *model.HabitCompletion) error
	deleteCompletion      func(ctx context.Context, habitId, userId uint64, date time.Time) (int64, error)
	getHistory            func(ctx context.Context, habitId uint64, since *time.Time) ([]*model.HabitCompletion, error)
	countByHabit          func(ctx context.Context, habitId uint64, since *time.Time) (int64, error)
	getLastCompletionDate func(ctx context.Context, habitId uint64) (*time.Time, error)
	countByUserIds        func(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error)
	countByDate           func(ctx context.Context, date time.Time) (map[uint64]int64, error)
	countDailyByUser      func(ctx context.Context, userId uint64, since time.Time) (map[string]int64, error)
	getFeed               func(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error)
}

func (m *mockCompletionRepo) CreateCompletion(ctx context.Context, completion *model.HabitCompletion) error {
	if m.createCompletion == nil {
		return nil
	}
	return m.createCompletion(ctx, completion)
}

func (m *mockCompletionRepo) DeleteCompletion(ctx context.Context, habitId, userId uint64, date time.Time) (int64, error) {
	if m.deleteCompletion == nil {
		return 0, nil
	}
	return m.deleteCompletion(ctx, habitId, userId, date)
}

func (m *mockCompletionRepo) GetHistory(ctx context.Context, habitId uint64, since *time.Time) ([]*model.HabitCompletion, error) {
	if m.getHistory == nil {
		return []*model.HabitCompletion{}, nil
	}
	return m.getHistory(ctx, habitId, since)
}

func (m *mockCompletionRepo) CountByHabit(ctx context.Context, habitId uint64, since *time.Time) (int64, error) {
	if m.countByHabit == nil {
		return 0, nil
	}
	return m.countByHabit(ctx, habitId, since)
}

func (m *mockCompletionRepo) GetLastCompletionDate(ctx context.Context, habitId uint64) (*time.Time, error) {
	if m.getLastCompletionDate == nil {
		return nil, nil
	}
	return m.getLastCompletionDate(ctx, habitId)
}

func (m *mockCompletionRepo) CountByUserIds(ctx context.Context, userIds []uint64, since *time.Time) (map[uint64]int64, error) {
	if m.countByUserIds == nil {
		return map[uint64]int64{}, nil
	}
	return m.countByUserIds(ctx, userIds, since)
}

func (m *mockCompletionRepo) CountByDate(ctx context.Context, date time.Time) (map[uint64]int64, error) {
	if m.countByDate == nil {
		return map[uint64]int64{}, nil
	}
	return m.countByDate(ctx, date)
}

func (m *mockCompletionRepo) CountDailyByUser(ctx context.Context, userId uint64, since time.Time) (map[string]int64, error) {
	if m.countDailyByUser == nil {
		return map[string]int64{}, nil
	}
	return m.countDailyByUser(ctx, userId, since)
}

func (m *mockCompletionRepo) GetFeed(ctx context.Context, userIds []uint64, since time.Time, limit, offset int) ([]*model.HabitCompletion, error) {
	if m.getFeed == nil {
		return []*model.HabitCompletion{}, nil
	}
	return m.getFeed(ctx, userIds, since, limit, offset)
}

type mockUserFollowRepo struct {
	getUserFollowers      func(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error)
	getUserFollowing      func(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error)
	getUserFollowerCount  func(ctx context.Context, userID uint64) (int64, error)
	getUserFollowingCount func(ctx context.Context, userID uint64) (int64, error)
	getUserFollow         func(ctx context.Context, userID uint64, followingID uint64) (*model.UserFollow, error)
	getFollowingIds       func(ctx context.Context, userID uint64) ([]uint64, error)
	getFollowingIn        func(ctx context.Context, userID uint64, ids []uint64) ([]uint64, error)
	createUserFollow      func(ctx context.Context, userFollow *model.UserFollow) error
	deleteUserFollow      func(ctx context.Context, userFollow *model.UserFollow) (int64, error)
}

func (m *mockUserFollowRepo) GetUserFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	if m.getUserFollowers == nil {
		return []*model.UserFollow{}, nil
	}
	return m.getUserFollowers(ctx, userID, limit, offset)
}

func (m *mockUserFollowRepo) GetUserFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	if m.getUserFollowing == nil {
		return []*model.UserFollow{}, nil
	}
	return m.getUserFollowing(ctx, userID, limit, offset)
}

func (m *mockUserFollowRepo) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	if m.getUserFollowerCount == nil {
		return 0, nil
	}
	return m.getUserFollowerCount(ctx, userID)
}

func (m *mockUserFollowRepo) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	if m.getUserFollowingCount == nil {
		return 0, nil
	}
	return m.getUserFollowingCount(ctx, userID)
}

func (m *mockUserFollowRepo) GetUserFollow(ctx context.Context, userID uint64, followingID uint64) (*model.UserFollow, error) {
	if m.getUserFollow == nil {
		return nil, nil
	}
	return m.getUserFollow(ctx, userID, followingID)
}

func (m *mockUserFollowRepo) GetFollowingIds(ctx context.Context, userID uint64) ([]uint64, error) {
	if m.getFollowingIds == nil {
		return []uint64{}, nil
	}
	return m.getFollowingIds(ctx, userID)
}

func (m *mockUserFollowRepo) GetFollowingIn(ctx context.Context, userID uint64, ids []uint64) ([]uint64, error) {
	if m.getFollowingIn == nil {
		return []uint64{}, nil
	}
	return m.getFollowingIn(ctx, userID, ids)
}

func (m *mockUserFollowRepo) CreateUserFollow(ctx context.Context, userFollow *model.UserFollow) error {
	if m.createUserFollow == nil {
		return nil
	}
	return m.createUserFollow(ctx, userFollow)
}

func (m *mockUserFollowRepo) DeleteUserFollow(ctx context.Context, userFollow *model.UserFollow) (int64, error) {
	if m.deleteUserFollow == nil {
		return 0, nil
	}
	return m.deleteUserFollow(ctx, userFollow)
}

type mockCategoryRepo struct {
	getAllCategories func(ctx context.Context) ([]*model.Category, error)
	getCategoryById  func(ctx context.Context, id uint64) (*model.Category, error)
	saveCategory     func(ctx context.Context, category *model.Category) error
}

func (m *mockCategoryRepo) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	if m.getAllCategories == nil {
		return []*model.Category{}, nil
	}
	return m.getAllCategories(ctx)
}

func (m *mockCategoryRepo) GetCategoryById(ctx context.Context, id uint64) (*model.Category, error) {
	if m.getCategoryById == nil {
		return nil, nil
	}
	return m.getCategoryById(ctx, id)
}

func (m *mockCategoryRepo) SaveCategory(ctx context.Context, category *model.Category) error {
	if m.saveCategory == nil {
		return nil
	}
	return m.saveCategory(ctx, category)
}

func strPtr(s string) *string {
	return &s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
