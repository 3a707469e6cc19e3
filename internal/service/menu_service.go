package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// ownedMenu loads a menu and checks the actor may act on it. Menus the actor
// cannot see report the same not-found error as menus that do not exist.
func ownedMenu(ctx context.Context, repo repository.MenuRepository, actor *model.Actor, id uuid.UUID) (*model.Menu, error) {
	menu, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, model.ErrMenuNotFound
	}
	if menu.UserID != actor.ID && !actor.IsAdmin() {
		return nil, model.ErrMenuNotFound
	}
	return menu, nil
}

// Create creates a menu with a slug derived from its title. On a slug
// collision a short unique suffix is appended.
func (s *menuService) Create(ctx context.Context, actor *model.Actor, req *model.CreateMenuRequest) (*model.Menu, error) {
	if req.Title == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Menu title is required")
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	now := time.Now()
	menu := &model.Menu{
		ID:          uuid.New(),
		UserID:      actor.ID,
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		Language:    language,
		Currency:    currency,
		Style:       req.Style,
		IsActive:    true,
		IsPublic:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.menuRepo.Create(ctx, menu)
	if err == model.ErrSlugTaken {
		menu.Slug = fmt.Sprintf("%s-%s", menu.Slug, menu.ID.String()[:8])
		err = s.menuRepo.Create(ctx, menu)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("menu_id", menu.ID.String()).
		Str("slug", menu.Slug).
		Msg("menu created")

	return menu, nil
}

// List retrieves the actor's menus.
func (s *menuService) List(ctx context.Context, actor *model.Actor) ([]model.Menu, error) {
	menus, err := s.menuRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// Get retrieves a menu with its full category tree.
func (s *menuService) Get(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.Menu, error) {
	menu, err := ownedMenu(ctx, s.menuRepo, actor, id)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.LoadTree(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to load menu tree: %w", err)
	}

	return menu, nil
}

// Update applies partial changes to a menu. The slug only changes through an
// explicit rename in the request.
func (s *menuService) Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateMenuRequest) (*model.Menu, error) {
	menu, err := ownedMenu(ctx, s.menuRepo, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Slug != nil {
		menu.Slug = slug.Make(*req.Slug)
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Language != nil {
		menu.Language = *req.Language
	}
	if req.Currency != nil {
		menu.Currency = *req.Currency
	}
	if req.Style != nil {
		menu.Style = req.Style
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if req.IsPublic != nil {
		menu.IsPublic = *req.IsPublic
	}
	menu.UpdatedAt = time.Now()

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_id", menu.ID.String()).Msg("menu updated")

	return menu, nil
}

// Delete removes a menu and everything beneath it.
func (s *menuService) Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error {
	if _, err := ownedMenu(ctx, s.menuRepo, actor, id); err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("menu_id", id.String()).Msg("menu deleted")
	return nil
}
