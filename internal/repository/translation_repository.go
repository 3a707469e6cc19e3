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

// translationRepository implements the TranslationRepository interface using PostgreSQL.
type translationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTranslationRepository creates a new PostgreSQL-backed translation repository.
func NewTranslationRepository(pool *pgxpool.Pool, logger zerolog.Logger) TranslationRepository {
	return &translationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "translation").Logger(),
	}
}

// GetByMenuAndLanguage retrieves the stored translation for a pair, or nil.
func (r *translationRepository) GetByMenuAndLanguage(ctx context.Context, menuID uuid.UUID, language string) (*model.Translation, error) {
	query := `
		SELECT id, menu_id, language, payload, created_at
		FROM menu_translations
		WHERE menu_id = $1 AND language = $2
	`

	var t model.Translation
	var payload []byte
	err := r.pool.QueryRow(ctx, query, menuID, language).Scan(
		&t.ID, &t.MenuID, &t.Language, &payload, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str("menu_id", menuID.String()).
				Str("language", language).
				Msg("no stored translation")
			return nil, nil
		}
		r.logger.Error().Err(err).
			Str("menu_id", menuID.String()).
			Str("language", language).
			Msg("failed to query translation")
		return nil, fmt.Errorf("failed to query translation: %w", err)
	}
	t.Payload = payload

	return &t, nil
}

// Create inserts a translation record. The unique constraint on
// (menu_id, language) is the only guard against concurrent first-time
// requests; the loser of that race gets model.ErrDuplicateTranslation and is
// expected to re-fetch instead of failing.
func (r *translationRepository) Create(ctx context.Context, tr *model.Translation) error {
	query := `
		INSERT INTO menu_translations (id, menu_id, language, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, tr.ID, tr.MenuID, tr.Language, tr.Payload, tr.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().
				Str("menu_id", tr.MenuID.String()).
				Str("language", tr.Language).
				Msg("translation already exists, lost insert race")
			return model.ErrDuplicateTranslation
		}
		r.logger.Error().Err(err).
			Str("menu_id", tr.MenuID.String()).
			Str("language", tr.Language).
			Msg("failed to create translation")
		return fmt.Errorf("failed to create translation: %w", err)
	}

	r.logger.Debug().
		Str("menu_id", tr.MenuID.String()).
		Str("language", tr.Language).
		Msg("translation stored")

	return nil
}

// Delete removes the stored translation for a pair so it can be regenerated.
func (r *translationRepository) Delete(ctx context.Context, menuID uuid.UUID, language string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM menu_translations WHERE menu_id = $1 AND language = $2`,
		menuID, language,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("menu_id", menuID.String()).
			Str("language", language).
			Msg("failed to delete translation")
		return fmt.Errorf("failed to delete translation: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrTranslationNotFound
	}

	return nil
}
