package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dishRepository implements the DishRepository interface using PostgreSQL.
type dishRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(pool *pgxpool.Pool, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// Create inserts a new dish.
func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	query := `
		INSERT INTO dishes (id, category_id, title, description, price, display_order,
			is_available, is_vegetarian, is_vegan, is_spicy, calories, prep_minutes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		dish.ID, dish.CategoryID, dish.Title, dish.Description, float64(dish.Price),
		dish.DisplayOrder, dish.IsAvailable, dish.IsVegetarian, dish.IsVegan,
		dish.IsSpicy, dish.Calories, dish.PrepMinutes, dish.CreatedAt, dish.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", dish.CategoryID.String()).Msg("failed to create dish")
		return fmt.Errorf("failed to create dish: %w", err)
	}

	return nil
}

// GetByID retrieves a single dish by its ID, including its allergens.
func (r *dishRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	query := `
		SELECT id, category_id, title, description, price, display_order,
			is_available, is_vegetarian, is_vegan, is_spicy, calories, prep_minutes,
			created_at, updated_at
		FROM dishes
		WHERE id = $1
	`

	var d model.Dish
	var price float64
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.CategoryID, &d.Title,
		&d.Description, &price, &d.DisplayOrder, &d.IsAvailable, &d.IsVegetarian,
		&d.IsVegan, &d.IsSpicy, &d.Calories, &d.PrepMinutes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("dish_id", id.String()).Msg("dish not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("dish_id", id.String()).Msg("failed to query dish")
		return nil, fmt.Errorf("failed to query dish: %w", err)
	}
	d.Price = model.Price(price)

	allergenQuery := `
		SELECT a.id, a.name, a.code, a.description, a.icon, a.is_active, a.created_at
		FROM dish_allergens da
		JOIN allergens a ON a.id = da.allergen_id
		WHERE da.dish_id = $1
	`

	rows, err := r.pool.Query(ctx, allergenQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", id.String()).Msg("failed to query dish allergens")
		return nil, fmt.Errorf("failed to query dish allergens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Allergen
		err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.Description, &a.Icon, &a.IsActive, &a.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan allergen row")
			return nil, fmt.Errorf("failed to scan allergen: %w", err)
		}
		d.Allergens = append(d.Allergens, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating allergen rows")
		return nil, fmt.Errorf("error iterating allergens: %w", err)
	}

	return &d, nil
}

// Update persists dish field changes.
func (r *dishRepository) Update(ctx context.Context, dish *model.Dish) error {
	query := `
		UPDATE dishes
		SET title = $2, description = $3, price = $4, display_order = $5,
			is_available = $6, is_vegetarian = $7, is_vegan = $8, is_spicy = $9,
			calories = $10, prep_minutes = $11, updated_at = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		dish.ID, dish.Title, dish.Description, float64(dish.Price), dish.DisplayOrder,
		dish.IsAvailable, dish.IsVegetarian, dish.IsVegan, dish.IsSpicy,
		dish.Calories, dish.PrepMinutes, dish.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", dish.ID.String()).Msg("failed to update dish")
		return fmt.Errorf("failed to update dish: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrDishNotFound
	}

	return nil
}

// Delete removes a dish and, via cascade, its allergen links.
func (r *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", id.String()).Msg("failed to delete dish")
		return fmt.Errorf("failed to delete dish: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrDishNotFound
	}

	return nil
}

// SetAllergens replaces the dish's allergen set inside a transaction.
func (r *dishRepository) SetAllergens(ctx context.Context, dishID uuid.UUID, allergenIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_allergens WHERE dish_id = $1`, dishID); err != nil {
		r.logger.Error().Err(err).Str("dish_id", dishID.String()).Msg("failed to clear dish allergens")
		return fmt.Errorf("failed to clear dish allergens: %w", err)
	}

	if len(allergenIDs) > 0 {
		batch := &pgx.Batch{}
		for _, allergenID := range allergenIDs {
			batch.Queue(`INSERT INTO dish_allergens (dish_id, allergen_id) VALUES ($1, $2)`, dishID, allergenID)
		}

		results := tx.SendBatch(ctx, batch)
		for range allergenIDs {
			if _, err := results.Exec(); err != nil {
				results.Close()
				r.logger.Error().Err(err).Str("dish_id", dishID.String()).Msg("failed to insert dish allergen")
				return fmt.Errorf("failed to insert dish allergen: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("dish_id", dishID.String()).Msg("failed to commit allergen update")
		return fmt.Errorf("failed to commit allergen update: %w", err)
	}

	r.logger.Debug().
		Str("dish_id", dishID.String()).
		Int("count", len(allergenIDs)).
		Msg("dish allergens replaced")

	return nil
}
