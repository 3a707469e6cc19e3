package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/database"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, connects a pool and applies
// the embedded schema migrations.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedUser inserts a user and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) *model.User {
	t.Helper()

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("owner-%s@example.com", uuid.NewString()[:8]),
		Name:         "Test Owner",
		PasswordHash: "not-a-real-hash",
		Role:         model.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

// SeedMenu inserts a menu owned by the given user and returns it.
func SeedMenu(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, slug string, public bool) *model.Menu {
	t.Helper()

	now := time.Now()
	menu := &model.Menu{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Trattoria Roma",
		Slug:      slug,
		Language:  "it",
		Currency:  "EUR",
		IsActive:  true,
		IsPublic:  public,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO menus (id, user_id, title, slug, description, language, currency,
			is_active, is_public, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', $5, $6, $7, $8, 0, $9, $10)
	`, menu.ID, menu.UserID, menu.Title, menu.Slug, menu.Language, menu.Currency,
		menu.IsActive, menu.IsPublic, menu.CreatedAt, menu.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}

	return menu
}

// CleanupDB removes all rows between tests. Deletion order follows foreign
// keys.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"menu_translations",
		"dish_allergens",
		"dishes",
		"categories",
		"menus",
		"allergens",
		"users",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
