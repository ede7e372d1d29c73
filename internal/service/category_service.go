package service

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/model"
	"Habitude/internal/repository"
	"context"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	SeedDefaults(ctx context.Context) error
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

var defaultCategories = []model.Category{
	{Name: "Health & Fitness", Color: "#EF4444", Icon: "heart"},
	{Name: "Learning", Color: "#3B82F6", Icon: "book"},
	{Name: "Productivity", Color: "#10B981", Icon: "zap"},
	{Name: "Mindfulness", Color: "#8B5CF6", Icon: "brain"},
	{Name: "Social", Color: "#F59E0B", Icon: "users"},
	{Name: "Hobbies", Color: "#EC4899", Icon: "palette"},
	{Name: "Finance", Color: "#059669", Icon: "dollar-sign"},
	{Name: "Other", Color: "#6B7280", Icon: "more-horizontal"},
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	categoryDTOs := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoryDTOs = append(categoryDTOs, categoryToDTO(category))
	}
	return categoryDTOs, nil
}

// SeedDefaults 启动时预置默认分类，按名称幂等
func (s *CategoryServiceImpl) SeedDefaults(ctx context.Context) error {
	for i := range defaultCategories {
		category := defaultCategories[i]
		if err := s.categoryRepo.SaveCategory(ctx, &category); err != nil {
			return err
		}
	}
	return nil
}
