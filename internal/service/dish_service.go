package service

import (
	"context"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// dishService implements DishService.
type dishService struct {
	dishRepo     repository.DishRepository
	categoryRepo repository.CategoryRepository
	menuRepo     repository.MenuRepository
	allergenRepo repository.AllergenRepository
	logger       zerolog.Logger
}

// NewDishService creates a new dish service.
func NewDishService(
	dishRepo repository.DishRepository,
	categoryRepo repository.CategoryRepository,
	menuRepo repository.MenuRepository,
	allergenRepo repository.AllergenRepository,
	logger zerolog.Logger,
) DishService {
	return &dishService{
		dishRepo:     dishRepo,
		categoryRepo: categoryRepo,
		menuRepo:     menuRepo,
		allergenRepo: allergenRepo,
		logger:       logger.With().Str("service", "dish").Logger(),
	}
}

// Create adds a dish to a category the actor owns.
func (s *dishService) Create(ctx context.Context, actor *model.Actor, categoryID uuid.UUID, req *model.CreateDishRequest) (*model.Dish, error) {
	if req.Title == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Dish title is required")
	}
	if req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}

	if _, err := s.ownedCategory(ctx, actor, categoryID); err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	now := time.Now()
	dish := &model.Dish{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DisplayOrder: req.DisplayOrder,
		IsAvailable:  available,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsSpicy:      req.IsSpicy,
		Calories:     req.Calories,
		PrepMinutes:  req.PrepMinutes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("dish_id", dish.ID.String()).
		Str("category_id", categoryID.String()).
		Msg("dish created")

	return dish, nil
}

func (s *dishService) ownedCategory(ctx context.Context, actor *model.Actor, categoryID uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
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

func (s *dishService) ownedDish(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, model.ErrDishNotFound
	}
	if _, err := s.ownedCategory(ctx, actor, dish.CategoryID); err != nil {
		return nil, model.ErrDishNotFound
	}
	return dish, nil
}

// Update applies partial changes to a dish.
func (s *dishService) Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateDishRequest) (*model.Dish, error) {
	dish, err := s.ownedDish(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, model.ErrInvalidPrice
		}
		dish.Price = *req.Price
	}
	if req.Title != nil {
		dish.Title = *req.Title
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		dish.DisplayOrder = *req.DisplayOrder
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}
	if req.IsVegetarian != nil {
		dish.IsVegetarian = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		dish.IsVegan = *req.IsVegan
	}
	if req.IsSpicy != nil {
		dish.IsSpicy = *req.IsSpicy
	}
	if req.Calories != nil {
		dish.Calories = req.Calories
	}
	if req.PrepMinutes != nil {
		dish.PrepMinutes = req.PrepMinutes
	}
	dish.UpdatedAt = time.Now()

	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return nil, err
	}

	return dish, nil
}

// Delete removes a dish.
func (s *dishService) Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error {
	if _, err := s.ownedDish(ctx, actor, id); err != nil {
		return err
	}

	if err := s.dishRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("dish_id", id.String()).Msg("dish deleted")
	return nil
}

// SetAllergens replaces the dish's allergen set after checking every
// referenced allergen exists.
func (s *dishService) SetAllergens(ctx context.Context, actor *model.Actor, dishID uuid.UUID, allergenIDs []uuid.UUID) (*model.Dish, error) {
	if _, err := s.ownedDish(ctx, actor, dishID); err != nil {
		return nil, err
	}

	if len(allergenIDs) > 0 {
		allergens, err := s.allergenRepo.GetByIDs(ctx, allergenIDs)
		if err != nil {
			return nil, err
		}
		if len(allergens) != len(allergenIDs) {
			return nil, model.ErrAllergenNotFound
		}
	}

	if err := s.dishRepo.SetAllergens(ctx, dishID, allergenIDs); err != nil {
		return nil, err
	}

	dish, err := s.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, model.ErrDishNotFound
	}

	return dish, nil
}
