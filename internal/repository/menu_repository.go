package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

const menuColumns = `id, user_id, title, slug, description, language, currency, style,
		is_active, is_public, view_count, last_viewed_at, created_at, updated_at`

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// styleOrDefault keeps the NOT NULL style column satisfied when a menu has no
// style document.
func styleOrDefault(style []byte) []byte {
	if len(style) == 0 {
		return []byte(`{}`)
	}
	return style
}

func scanMenu(row pgx.Row) (*model.Menu, error) {
	var m model.Menu
	var style []byte
	err := row.Scan(
		&m.ID, &m.UserID, &m.Title, &m.Slug, &m.Description, &m.Language,
		&m.Currency, &style, &m.IsActive, &m.IsPublic, &m.ViewCount,
		&m.LastViewedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Style = style
	return &m, nil
}

// Create inserts a new menu.
func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	query := `
		INSERT INTO menus (id, user_id, title, slug, description, language, currency,
			style, is_active, is_public, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		menu.ID, menu.UserID, menu.Title, menu.Slug, menu.Description,
		menu.Language, menu.Currency, styleOrDefault(menu.Style), menu.IsActive, menu.IsPublic,
		menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		r.logger.Error().Err(err).Str("slug", menu.Slug).Msg("failed to create menu")
		return fmt.Errorf("failed to create menu: %w", err)
	}

	r.logger.Debug().Str("menu_id", menu.ID.String()).Str("slug", menu.Slug).Msg("menu created")
	return nil
}

// GetByID retrieves a menu by its ID without its category tree.
func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menus WHERE id = $1`

	menu, err := scanMenu(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	return menu, nil
}

// GetPublicBySlug retrieves a visible menu by slug. The same nil result is
// returned for an unknown slug and for an inactive or private menu, so
// callers cannot tell the two cases apart.
func (r *menuRepository) GetPublicBySlug(ctx context.Context, slug string) (*model.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menus WHERE slug = $1 AND is_active AND is_public`

	menu, err := scanMenu(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("slug", slug).Msg("no visible menu for slug")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("failed to query menu by slug")
		return nil, fmt.Errorf("failed to query menu by slug: %w", err)
	}

	return menu, nil
}

// ListByUser retrieves all menus owned by a user.
func (r *menuRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menus WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query menus")
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	var menus []model.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu row")
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, *menu)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu rows")
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	return menus, nil
}

// Update persists menu field changes.
func (r *menuRepository) Update(ctx context.Context, menu *model.Menu) error {
	query := `
		UPDATE menus
		SET title = $2, slug = $3, description = $4, language = $5, currency = $6,
			style = $7, is_active = $8, is_public = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		menu.ID, menu.Title, menu.Slug, menu.Description, menu.Language,
		menu.Currency, styleOrDefault(menu.Style), menu.IsActive, menu.IsPublic, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to update menu")
		return fmt.Errorf("failed to update menu: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrMenuNotFound
	}

	return nil
}

// Delete removes a menu; categories, dishes and translations cascade.
func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to delete menu")
		return fmt.Errorf("failed to delete menu: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrMenuNotFound
	}

	return nil
}

// IncrementViewCount atomically bumps view_count and stamps last_viewed_at.
// The increment happens in the database so concurrent public resolutions
// never lose updates.
func (r *menuRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE menus
		SET view_count = view_count + 1, last_viewed_at = now()
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to increment view count")
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return nil
}

// LoadTree populates the menu's categories with one level of children, their
// dishes in display order, and each dish's allergens.
func (r *menuRepository) LoadTree(ctx context.Context, menu *model.Menu) error {
	categories, err := r.loadCategories(ctx, menu.ID)
	if err != nil {
		return err
	}

	dishesByCategory, err := r.loadDishes(ctx, menu.ID)
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*model.Category, len(categories))
	for i := range categories {
		categories[i].Dishes = dishesByCategory[categories[i].ID]
		byID[categories[i].ID] = &categories[i]
	}

	// Two levels only: a category whose parent is itself a child is not
	// rendered publicly and is left out of the tree.
	var tree []model.Category
	for i := range categories {
		if categories[i].ParentID != nil {
			continue
		}
		tree = append(tree, categories[i])
	}
	for i := range categories {
		parentID := categories[i].ParentID
		if parentID == nil {
			continue
		}
		parent, ok := byID[*parentID]
		if !ok || parent.ParentID != nil {
			continue
		}
		for j := range tree {
			if tree[j].ID == *parentID {
				tree[j].Children = append(tree[j].Children, categories[i])
				break
			}
		}
	}

	menu.Categories = tree
	return nil
}

func (r *menuRepository) loadCategories(ctx context.Context, menuID uuid.UUID) ([]model.Category, error) {
	query := `
		SELECT id, menu_id, parent_id, name, description, display_order, created_at, updated_at
		FROM categories
		WHERE menu_id = $1
		ORDER BY display_order, created_at
	`

	rows, err := r.pool.Query(ctx, query, menuID)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menuID.String()).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.MenuID, &c.ParentID, &c.Name, &c.Description,
			&c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *menuRepository) loadDishes(ctx context.Context, menuID uuid.UUID) (map[uuid.UUID][]model.Dish, error) {
	query := `
		SELECT d.id, d.category_id, d.title, d.description, d.price, d.display_order,
			d.is_available, d.is_vegetarian, d.is_vegan, d.is_spicy,
			d.calories, d.prep_minutes, d.created_at, d.updated_at
		FROM dishes d
		JOIN categories c ON c.id = d.category_id
		WHERE c.menu_id = $1
		ORDER BY d.display_order, d.created_at
	`

	rows, err := r.pool.Query(ctx, query, menuID)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menuID.String()).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	dishesByCategory := make(map[uuid.UUID][]model.Dish)
	dishIndex := make(map[uuid.UUID]struct {
		categoryID uuid.UUID
		pos        int
	})
	for rows.Next() {
		var d model.Dish
		var price float64
		err := rows.Scan(&d.ID, &d.CategoryID, &d.Title, &d.Description, &price,
			&d.DisplayOrder, &d.IsAvailable, &d.IsVegetarian, &d.IsVegan,
			&d.IsSpicy, &d.Calories, &d.PrepMinutes, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		d.Price = model.Price(price)
		dishesByCategory[d.CategoryID] = append(dishesByCategory[d.CategoryID], d)
		dishIndex[d.ID] = struct {
			categoryID uuid.UUID
			pos        int
		}{d.CategoryID, len(dishesByCategory[d.CategoryID]) - 1}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	if len(dishIndex) == 0 {
		return dishesByCategory, nil
	}

	allergenQuery := `
		SELECT da.dish_id, a.id, a.name, a.code, a.description, a.icon, a.is_active, a.created_at
		FROM dish_allergens da
		JOIN allergens a ON a.id = da.allergen_id
		JOIN dishes d ON d.id = da.dish_id
		JOIN categories c ON c.id = d.category_id
		WHERE c.menu_id = $1
	`

	allergenRows, err := r.pool.Query(ctx, allergenQuery, menuID)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menuID.String()).Msg("failed to query dish allergens")
		return nil, fmt.Errorf("failed to query dish allergens: %w", err)
	}
	defer allergenRows.Close()

	for allergenRows.Next() {
		var dishID uuid.UUID
		var a model.Allergen
		err := allergenRows.Scan(&dishID, &a.ID, &a.Name, &a.Code, &a.Description,
			&a.Icon, &a.IsActive, &a.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan allergen row")
			return nil, fmt.Errorf("failed to scan allergen: %w", err)
		}
		idx, ok := dishIndex[dishID]
		if !ok {
			continue
		}
		dishes := dishesByCategory[idx.categoryID]
		dishes[idx.pos].Allergens = append(dishes[idx.pos].Allergens, a)
	}

	if err := allergenRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating allergen rows")
		return nil, fmt.Errorf("error iterating allergens: %w", err)
	}

	return dishesByCategory, nil
}
