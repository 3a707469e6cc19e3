package repository

import (
	"context"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
)

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// Create inserts a new menu.
	Create(ctx context.Context, menu *model.Menu) error

	// GetByID retrieves a menu by its ID without its category tree.
	// Returns nil when the menu does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetPublicBySlug retrieves a menu by slug where is_active and is_public
	// both hold. Returns nil when no such menu is visible.
	GetPublicBySlug(ctx context.Context, slug string) (*model.Menu, error)

	// ListByUser retrieves all menus owned by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Menu, error)

	// Update persists menu field changes.
	Update(ctx context.Context, menu *model.Menu) error

	// Delete removes a menu and, via cascade, its categories and dishes.
	Delete(ctx context.Context, id uuid.UUID) error

	// LoadTree populates the menu's category tree: top-level categories with
	// one level of children, dishes and allergens, all in display order.
	LoadTree(ctx context.Context, menu *model.Menu) error

	// IncrementViewCount atomically bumps view_count by one and stamps
	// last_viewed_at.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error

	// GetByID returns nil when the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]model.Category, error)

	Update(ctx context.Context, category *model.Category) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// DishRepository defines the interface for dish data access operations.
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error

	// GetByID returns nil when the dish does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Dish, error)

	Update(ctx context.Context, dish *model.Dish) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SetAllergens replaces the dish's allergen set.
	SetAllergens(ctx context.Context, dishID uuid.UUID, allergenIDs []uuid.UUID) error
}

// AllergenRepository defines the interface for allergen catalogue access.
type AllergenRepository interface {
	Create(ctx context.Context, allergen *model.Allergen) error

	// GetByID returns nil when the allergen does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Allergen, error)

	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Allergen, error)

	List(ctx context.Context) ([]model.Allergen, error)

	Update(ctx context.Context, allergen *model.Allergen) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// TranslationRepository defines the interface for stored menu translations.
type TranslationRepository interface {
	// GetByMenuAndLanguage returns nil when no record exists for the pair.
	GetByMenuAndLanguage(ctx context.Context, menuID uuid.UUID, language string) (*model.Translation, error)

	// Create inserts a new translation record. A uniqueness violation on
	// (menu_id, language) is reported as model.ErrDuplicateTranslation so the
	// caller can recover by re-fetching.
	Create(ctx context.Context, tr *model.Translation) error

	// Delete removes the record for the pair, enabling regeneration.
	Delete(ctx context.Context, menuID uuid.UUID, language string) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error

	// GetByEmail returns nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID returns nil when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
