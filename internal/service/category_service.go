package service

import (
	"context"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	menuRepo     repository.MenuRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, menuRepo repository.MenuRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		menuRepo:     menuRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// Create adds a category to a menu. A parent, if given, must belong to the
// same menu.
func (s *categoryService) Create(ctx context.Context, actor *model.Actor, menuID uuid.UUID, req *model.CreateCategoryRequest) (*model.Category, error) {
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}

	if _, err := ownedMenu(ctx, s.menuRepo, actor, menuID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, model.ErrCategoryNotFound
		}
		if parent.MenuID != menuID {
			return nil, model.ErrCrossMenuParent
		}
	}

	now := time.Now()
	category := &model.Category{
		ID:           uuid.New(),
		MenuID:       menuID,
		ParentID:     req.ParentID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("category_id", category.ID.String()).
		Str("menu_id", menuID.String()).
		Msg("category created")

	return category, nil
}

// resolveOwned loads a category and verifies the actor owns its menu.
func (s *categoryService) resolveOwned(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, model.ErrCategoryNotFound
	}
	if _, err := ownedMenu(ctx, s.menuRepo, actor, category.MenuID); err != nil {
		return nil, model.ErrCategoryNotFound
	}
	return category, nil
}

// Update applies partial changes to a category.
func (s *categoryService) Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category; its children and dishes cascade.
func (s *categoryService) Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error {
	if _, err := s.resolveOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}
