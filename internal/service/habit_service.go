package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const completionDateLayout = "2006-01-02"

type HabitService interface {
	GetHabits(ctx context.Context, userId uint64, active bool) ([]*dto.HabitDTO, error)
	GetHabitDetail(ctx context.Context, userId, habitId uint64) (*dto.HabitDetailDTO, error)
	CreateHabit(ctx context.Context, userId uint64, habitDTO *dto.HabitBaseDTO) (*dto.HabitDTO, error)
	UpdateHabit(ctx context.Context, userId, habitId uint64, habitDTO *dto.HabitBaseDTO) error
	DeleteHabit(ctx context.Context, userId, habitId uint64) error
	CheckIn(ctx context.Context, userId, habitId uint64, checkInDTO *dto.CheckInDTO) (*dto.CompletionDTO, error)
	RemoveCheckIn(ctx context.Context, userId, habitId uint64, date *string) error
	GetHabitStats(ctx context.Context, userId, habitId uint64) (*dto.HabitStatsDTO, error)
	GetCurrentStreak(ctx context.Context, userId, habitId uint64) (int, error)
}

type HabitServiceImpl struct {
	habitRepo      repository.HabitRepo
	completionRepo repository.HabitCompletionRepo
	categoryRepo   repository.CategoryRepo
}

func NewHabitService(habitRepo repository.HabitRepo, completionRepo repository.HabitCompletionRepo, categoryRepo repository.CategoryRepo) HabitService {
	return &HabitServiceImpl{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		categoryRepo:   categoryRepo,
	}
}

func (s *HabitServiceImpl) GetHabits(ctx context.Context, userId uint64, active bool) ([]*dto.HabitDTO, error) {
	habits, err := s.habitRepo.GetHabitsByUserId(ctx, userId, active)
	if err != nil {
		return nil, err
	}

	habitDTOs := make([]*dto.HabitDTO, 0, len(habits))
	for _, habit := range habits {
		habitDTO, err := s.habitToDTO(habit)
		if err != nil {
			return nil, err
		}
		habitDTO.Stats, err = s.buildStats(ctx, habit.ID)
		if err != nil {
			return nil, err
		}
		habitDTOs = append(habitDTOs, habitDTO)
	}
	return habitDTOs, nil
}

// GetHabitDetail 获取习惯详情，附带近 30 天打卡历史与当前连击
func (s *HabitServiceImpl) GetHabitDetail(ctx context.Context, userId, habitId uint64) (*dto.HabitDetailDTO, error) {
	habit, err := s.getOwnedHabit(ctx, userId, habitId)
	if err != nil {
		return nil, err
	}

	since := midnightUTC(time.Now()).AddDate(0, 0, -30)
	completions, err := s.completionRepo.GetHistory(ctx, habitId, &since)
	if err != nil {
		return nil, err
	}

	streak, err := s.GetCurrentStreak(ctx, userId, habitId)
	if err != nil {
		return nil, err
	}

	habitDTO, err := s.habitToDTO(habit)
	if err != nil {
		return nil, err
	}

	detail := &dto.HabitDetailDTO{
		HabitDTO:      *habitDTO,
		Completions:   make([]*dto.CompletionDTO, 0, len(completions)),
		CurrentStreak: streak,
	}
	for _, completion := range completions {
		detail.Completions = append(detail.Completions, completionToDTO(completion))
	}
	return detail, nil
}

func (s *HabitServiceImpl) CreateHabit(ctx context.Context, userId uint64, habitDTO *dto.HabitBaseDTO) (*dto.HabitDTO, error) {
	if err := s.checkNameConflict(ctx, userId, habitDTO.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, habitDTO.CategoryID); err != nil {
		return nil, err
	}

	habit := &model.Habit{}
	if err := copier.Copy(habit, habitDTO); err != nil {
		return nil, err
	}
	habit.UserID = userId
	habit.IsActive = true
	if habit.TargetCount == 0 {
		habit.TargetCount = 1
	}

	if err := s.habitRepo.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}
	return s.habitToDTO(habit)
}

func (s *HabitServiceImpl) UpdateHabit(ctx context.Context, userId, habitId uint64, habitDTO *dto.HabitBaseDTO) error {
	habit, err := s.getOwnedHabit(ctx, userId, habitId)
	if err != nil {
		return err
	}
	if err = s.checkNameConflict(ctx, userId, habitDTO.Name, habitId); err != nil {
		return err
	}
	if err = s.checkCategory(ctx, habitDTO.CategoryID); err != nil {
		return err
	}

	habit.Name = habitDTO.Name
	habit.Description = habitDTO.Description
	habit.Frequency = habitDTO.Frequency
	habit.CategoryID = habitDTO.CategoryID
	habit.TargetCount = habitDTO.TargetCount
	if habit.TargetCount == 0 {
		habit.TargetCount = 1
	}
	if habitDTO.IsActive != nil {
		habit.IsActive = *habitDTO.IsActive
	}

	return s.habitRepo.UpdateHabit(ctx, habit)
}

// DeleteHabit 软删除，打卡历史保留
func (s *HabitServiceImpl) DeleteHabit(ctx context.Context, userId, habitId uint64) error {
	rows, err := s.habitRepo.DeactivateHabit(ctx, habitId, userId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// CheckIn 打卡。完成日期归一到 UTC 零点，同一 (习惯, 日期) 只允许一条记录，
// 并发冲突由唯一索引裁决，失败即返回已打卡错误，不做重试
func (s *HabitServiceImpl) CheckIn(ctx context.Context, userId, habitId uint64, checkInDTO *dto.CheckInDTO) (*dto.CompletionDTO, error) {
	habit, err := s.getOwnedHabit(ctx, userId, habitId)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, ErrHabitNotFound
	}

	completionDate, err := parseCompletionDate(checkInDTO.Date)
	if err != nil {
		return nil, err
	}

	completion := &model.HabitCompletion{
		HabitID:        habitId,
		UserID:         userId,
		CompletionDate: completionDate,
		Notes:          checkInDTO.Notes,
	}
	if err = s.completionRepo.CreateCompletion(ctx, completion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompletionExist
		}
		return nil, err
	}
	return completionToDTO(completion), nil
}

func (s *HabitServiceImpl) RemoveCheckIn(ctx context.Context, userId, habitId uint64, date *string) error {
	if _, err := s.getOwnedHabit(ctx, userId, habitId); err != nil {
		return err
	}

	completionDate, err := parseCompletionDate(date)
	if err != nil {
		return err
	}

	rows, err := s.completionRepo.DeleteCompletion(ctx, habitId, userId, completionDate)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCompletionNotFound
	}
	return nil
}

func (s *HabitServiceImpl) GetHabitStats(ctx context.Context, userId, habitId uint64) (*dto.HabitStatsDTO, error) {
	if _, err := s.getOwnedHabit(ctx, userId, habitId); err != nil {
		return nil, err
	}
	return s.buildStats(ctx, habitId)
}

func (s *HabitServiceImpl) GetCurrentStreak(ctx context.Context, userId, habitId uint64) (int, error) {
	if _, err := s.getOwnedHabit(ctx, userId, habitId); err != nil {
		return 0, err
	}

	completions, err := s.completionRepo.GetHistory(ctx, habitId, nil)
	if err != nil {
		return 0, err
	}

	dates := make([]time.Time, 0, len(completions))
	for _, completion := range completions {
		dates = append(dates, completion.CompletionDate)
	}
	return CurrentStreak(dates, time.Now()), nil
}

// getOwnedHabit 取出习惯并校验归属，聚合查询不允许越权读取他人习惯
func (s *HabitServiceImpl) getOwnedHabit(ctx context.Context, userId, habitId uint64) (*model.Habit, error) {
	habit, err := s.habitRepo.GetHabitById(ctx, habitId)
	if err != nil {
		return nil, err
	}
	if habit == nil || habit.UserID != userId {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

func (s *HabitServiceImpl) checkNameConflict(ctx context.Context, userId uint64, name string, excludeId uint64) error {
	existing, err := s.habitRepo.GetActiveHabitByName(ctx, userId, name, excludeId)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrHabitNameExist
	}
	return nil
}

func (s *HabitServiceImpl) checkCategory(ctx context.Context, categoryId *uint64) error {
	if categoryId == nil {
		return nil
	}
	category, err := s.categoryRepo.GetCategoryById(ctx, *categoryId)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *HabitServiceImpl) buildStats(ctx context.Context, habitId uint64) (*dto.HabitStatsDTO, error) {
	total, err := s.completionRepo.CountByHabit(ctx, habitId, nil)
	if err != nil {
		return nil, err
	}

	weekAgo := midnightUTC(time.Now()).AddDate(0, 0, -7)
	week, err := s.completionRepo.CountByHabit(ctx, habitId, &weekAgo)
	if err != nil {
		return nil, err
	}

	last, err := s.completionRepo.GetLastCompletionDate(ctx, habitId)
	if err != nil {
		return nil, err
	}

	return &dto.HabitStatsDTO{
		TotalCompletions: total,
		WeekCompletions:  week,
		LastCompletion:   last,
	}, nil
}

func (s *HabitServiceImpl) habitToDTO(habit *model.Habit) (*dto.HabitDTO, error) {
	habitDTO := &dto.HabitDTO{}
	if err := copier.Copy(habitDTO, habit); err != nil {
		return nil, err
	}
	habitDTO.Category = categoryToDTO(habit.Category)
	return habitDTO, nil
}

func categoryToDTO(category *model.Category) *dto.CategoryDTO {
	if category == nil {
		return nil
	}
	return &dto.CategoryDTO{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
		Icon:  category.Icon,
	}
}

func completionToDTO(completion *model.HabitCompletion) *dto.CompletionDTO {
	return &dto.CompletionDTO{
		ID:             completion.ID,
		CompletionDate: completion.CompletionDate,
		CompletedAt:    completion.CreatedAt,
		Notes:          completion.Notes,
	}
}

// parseCompletionDate 解析打卡日期，缺省为今天，归一到 UTC 零点
func parseCompletionDate(date *string) (time.Time, error) {
	if date == nil || *date == "" {
		return midnightUTC(time.Now()), nil
	}
	parsed, err := time.Parse(completionDateLayout, *date)
	if err != nil {
		return time.Time{}, ErrParamInvalid
	}
	return midnightUTC(parsed), nil
}
