package model

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Price is a monetary amount that always serialises with exactly two
// fractional digits.
type Price float64

// MarshalJSON renders the price as a JSON number with two decimal places.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts any JSON number and rounds it to two decimal places.
func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Price(float64(int64(f*100+0.5)) / 100)
	return nil
}

// Menu represents a restaurant menu owned by a user. When loaded as a full
// snapshot for a request, Categories holds the top-level categories with
// their children, dishes and allergens populated.
type Menu struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"userId" db:"user_id"`
	Title        string          `json:"title" db:"title"`
	Slug         string          `json:"slug" db:"slug"`
	Description  string          `json:"description" db:"description"`
	Language     string          `json:"language" db:"language"`
	Currency     string          `json:"currency" db:"currency"`
	Style        json.RawMessage `json:"style,omitempty" db:"style"`
	IsActive     bool            `json:"isActive" db:"is_active"`
	IsPublic     bool            `json:"isPublic" db:"is_public"`
	ViewCount    int64           `json:"viewCount" db:"view_count"`
	LastViewedAt *time.Time      `json:"lastViewedAt,omitempty" db:"last_viewed_at"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`

	Categories []Category `json:"categories,omitempty" db:"-"`
}

// Category groups dishes within a menu. A category may have one level of
// child categories; children of children are never rendered publicly.
type Category struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	MenuID       uuid.UUID  `json:"menuId" db:"menu_id"`
	ParentID     *uuid.UUID `json:"parentId,omitempty" db:"parent_id"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	DisplayOrder int        `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	Children []Category `json:"children,omitempty" db:"-"`
	Dishes   []Dish     `json:"dishes,omitempty" db:"-"`
}

// Dish is a single menu item belonging to a category.
type Dish struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CategoryID   uuid.UUID `json:"categoryId" db:"category_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Price        Price     `json:"price" db:"price"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	IsAvailable  bool      `json:"isAvailable" db:"is_available"`
	IsVegetarian bool      `json:"isVegetarian" db:"is_vegetarian"`
	IsVegan      bool      `json:"isVegan" db:"is_vegan"`
	IsSpicy      bool      `json:"isSpicy" db:"is_spicy"`
	Calories     *int      `json:"calories,omitempty" db:"calories"`
	PrepMinutes  *int      `json:"prepMinutes,omitempty" db:"prep_minutes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Allergens []Allergen `json:"allergens,omitempty" db:"-"`
}

// Allergen is a catalogue entry that dishes reference many-to-many.
type Allergen struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateMenuRequest is the payload for creating a menu.
type CreateMenuRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Language    string          `json:"language"`
	Currency    string          `json:"currency"`
	Style       json.RawMessage `json:"style,omitempty"`
}

// UpdateMenuRequest is the payload for updating a menu. Nil pointers leave
// the corresponding field unchanged; Slug renames the public address.
type UpdateMenuRequest struct {
	Title       *string         `json:"title,omitempty"`
	Slug        *string         `json:"slug,omitempty"`
	Description *string         `json:"description,omitempty"`
	Language    *string         `json:"language,omitempty"`
	Currency    *string         `json:"currency,omitempty"`
	Style       json.RawMessage `json:"style,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
	IsPublic    *bool           `json:"isPublic,omitempty"`
}

// CreateCategoryRequest is the payload for creating a category under a menu.
type CreateCategoryRequest struct {
	ParentID     *uuid.UUID `json:"parentId,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"displayOrder"`
}

// UpdateCategoryRequest is the payload for updating a category.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// CreateDishRequest is the payload for creating a dish under a category.
type CreateDishRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        Price  `json:"price"`
	DisplayOrder int    `json:"displayOrder"`
	IsAvailable  *bool  `json:"isAvailable,omitempty"`
	IsVegetarian bool   `json:"isVegetarian"`
	IsVegan      bool   `json:"isVegan"`
	IsSpicy      bool   `json:"isSpicy"`
	Calories     *int   `json:"calories,omitempty"`
	PrepMinutes  *int   `json:"prepMinutes,omitempty"`
}

// UpdateDishRequest is the payload for updating a dish.
type UpdateDishRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	IsAvailable  *bool   `json:"isAvailable,omitempty"`
	IsVegetarian *bool   `json:"isVegetarian,omitempty"`
	IsVegan      *bool   `json:"isVegan,omitempty"`
	IsSpicy      *bool   `json:"isSpicy,omitempty"`
	Calories     *int    `json:"calories,omitempty"`
	PrepMinutes  *int    `json:"prepMinutes,omitempty"`
}
