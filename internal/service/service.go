package service

import (
	"context"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
)

// AuthService defines operations for account management.
type AuthService interface {
	// Register creates an owner account and returns a signed token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates an existing account and returns a signed token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

// MenuService defines operations for owner-side menu management.
type MenuService interface {
	// Create creates a menu with a slug derived from its title.
	Create(ctx context.Context, actor *model.Actor, req *model.CreateMenuRequest) (*model.Menu, error)

	// List retrieves the actor's menus.
	List(ctx context.Context, actor *model.Actor) ([]model.Menu, error)

	// Get retrieves a menu with its full category tree and view analytics.
	Get(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.Menu, error)

	// Update applies partial changes; setting Slug renames the public address.
	Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateMenuRequest) (*model.Menu, error)

	// Delete removes a menu and everything beneath it.
	Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error
}

// CategoryService defines operations for category management.
type CategoryService interface {
	// Create adds a category to a menu. A parent, if given, must belong to
	// the same menu.
	Create(ctx context.Context, actor *model.Actor, menuID uuid.UUID, req *model.CreateCategoryRequest) (*model.Category, error)

	Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.Category, error)

	Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error
}

// DishService defines operations for dish management.
type DishService interface {
	Create(ctx context.Context, actor *model.Actor, categoryID uuid.UUID, req *model.CreateDishRequest) (*model.Dish, error)

	Update(ctx context.Context, actor *model.Actor, id uuid.UUID, req *model.UpdateDishRequest) (*model.Dish, error)

	Delete(ctx context.Context, actor *model.Actor, id uuid.UUID) error

	// SetAllergens replaces the dish's allergen set.
	SetAllergens(ctx context.Context, actor *model.Actor, dishID uuid.UUID, allergenIDs []uuid.UUID) (*model.Dish, error)
}

// AllergenService defines operations for the shared allergen catalogue.
type AllergenService interface {
	Create(ctx context.Context, req *model.CreateAllergenRequest) (*model.Allergen, error)

	List(ctx context.Context) ([]model.Allergen, error)

	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAllergenRequest) (*model.Allergen, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// TranslationService defines owner-triggered translation generation.
type TranslationService interface {
	// Generate returns the stored translation for (menu, language), creating
	// it via the external service on first request. Repeated calls for the
	// same pair never re-translate.
	Generate(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) (*model.Translation, error)

	// Delete removes a stored translation so the owner can regenerate it.
	Delete(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) error
}

// PublicMenuService serves the unauthenticated public menu view.
type PublicMenuService interface {
	// Resolve loads the visible menu for a slug, records the view, and
	// applies a cached translation when one exists for the requested
	// language.
	Resolve(ctx context.Context, slug, language string) (*model.Menu, error)
}
