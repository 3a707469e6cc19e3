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

// allergenRepository implements the AllergenRepository interface using PostgreSQL.
type allergenRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAllergenRepository creates a new PostgreSQL-backed allergen repository.
func NewAllergenRepository(pool *pgxpool.Pool, logger zerolog.Logger) AllergenRepository {
	return &allergenRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "allergen").Logger(),
	}
}

// Create inserts a new allergen. Name and code are unique.
func (r *allergenRepository) Create(ctx context.Context, allergen *model.Allergen) error {
	query := `
		INSERT INTO allergens (id, name, code, description, icon, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		allergen.ID, allergen.Name, allergen.Code, allergen.Description,
		allergen.Icon, allergen.IsActive, allergen.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAllergenTaken
		}
		r.logger.Error().Err(err).Str("code", allergen.Code).Msg("failed to create allergen")
		return fmt.Errorf("failed to create allergen: %w", err)
	}

	return nil
}

// GetByID retrieves a single allergen by its ID.
func (r *allergenRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Allergen, error) {
	query := `
		SELECT id, name, code, description, icon, is_active, created_at
		FROM allergens
		WHERE id = $1
	`

	var a model.Allergen
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Code,
		&a.Description, &a.Icon, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("allergen_id", id.String()).Msg("allergen not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("allergen_id", id.String()).Msg("failed to query allergen")
		return nil, fmt.Errorf("failed to query allergen: %w", err)
	}

	return &a, nil
}

// GetByIDs retrieves multiple allergens by their IDs.
func (r *allergenRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Allergen, error) {
	if len(ids) == 0 {
		return []model.Allergen{}, nil
	}

	query := `
		SELECT id, name, code, description, icon, is_active, created_at
		FROM allergens
		WHERE id = ANY($1)
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query allergens by IDs")
		return nil, fmt.Errorf("failed to query allergens by IDs: %w", err)
	}
	defer rows.Close()

	return scanAllergens(rows, r.logger)
}

// List retrieves the whole allergen catalogue ordered by name.
func (r *allergenRepository) List(ctx context.Context) ([]model.Allergen, error) {
	query := `
		SELECT id, name, code, description, icon, is_active, created_at
		FROM allergens
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query allergens")
		return nil, fmt.Errorf("failed to query allergens: %w", err)
	}
	defer rows.Close()

	return scanAllergens(rows, r.logger)
}

func scanAllergens(rows pgx.Rows, logger zerolog.Logger) ([]model.Allergen, error) {
	var allergens []model.Allergen
	for rows.Next() {
		var a model.Allergen
		err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.Description, &a.Icon, &a.IsActive, &a.CreatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan allergen row")
			return nil, fmt.Errorf("failed to scan allergen: %w", err)
		}
		allergens = append(allergens, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating allergen rows")
		return nil, fmt.Errorf("error iterating allergens: %w", err)
	}

	return allergens, nil
}

// Update persists allergen field changes.
func (r *allergenRepository) Update(ctx context.Context, allergen *model.Allergen) error {
	query := `
		UPDATE allergens
		SET name = $2, description = $3, icon = $4, is_active = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		allergen.ID, allergen.Name, allergen.Description, allergen.Icon, allergen.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAllergenTaken
		}
		r.logger.Error().Err(err).Str("allergen_id", allergen.ID.String()).Msg("failed to update allergen")
		return fmt.Errorf("failed to update allergen: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAllergenNotFound
	}

	return nil
}

// Delete removes an allergen from the catalogue; dish links cascade.
func (r *allergenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM allergens WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("allergen_id", id.String()).Msg("failed to delete allergen")
		return fmt.Errorf("failed to delete allergen: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAllergenNotFound
	}

	return nil
}
