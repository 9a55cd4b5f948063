package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/ff-survey/internal/store/schema"
)

var (
	testDB      *gorm.DB
	testDBErr   error
	testDBOnce  sync.Once
	pgContainer *postgres.PostgresContainer
)

// TestMain terminates the PostgreSQL container started by the tests
func TestMain(m *testing.M) {
	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// testDSN returns the DSN of an external database (TEST_DB_HOST) or starts a container
func testDSN(ctx context.Context) (string, error) {
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db")), nil
	}

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	return pgContainer.ConnectionString(ctx, "sslmode=disable")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// initializeTestDatabase runs the schema initialization
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// initPGTestDB returns a store bound to a transaction rolled back after the test
func initPGTestDB(t *testing.T) Store {
	if os.Getenv("TEST_DB_HOST") == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	testDBOnce.Do(func() {
		ctx := context.Background()
		dsn, err := testDSN(ctx)
		if err != nil {
			testDBErr = err
			return
		}

		testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			testDBErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		testDBErr = initializeTestDatabase(testDB)
	})
	require.NoError(t, testDBErr)

	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func TestPGStore_PollAnalysis(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	got, err := s.GetPollAnalysis(ctx, "0xpoll", "hash-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SavePollAnalysis(ctx, &schema.PollAnalysis{
		PollID:    "0xpoll",
		StatsHash: "hash-1",
		Stats:     datatypes.JSON(`[{"label":"A","votes":1}]`),
		Analysis:  "A wins",
		Model:     "gemini-2.5-flash",
	}))

	got, err = s.GetPollAnalysis(ctx, "0xpoll", "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A wins", got.Analysis)

	// same key replaces the analysis
	require.NoError(t, s.SavePollAnalysis(ctx, &schema.PollAnalysis{
		PollID:    "0xpoll",
		StatsHash: "hash-1",
		Stats:     datatypes.JSON(`[{"label":"A","votes":1}]`),
		Analysis:  "A still wins",
	}))
	got, err = s.GetPollAnalysis(ctx, "0xpoll", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "A still wins", got.Analysis)

	other, err := s.GetPollAnalysis(ctx, "0xpoll", "hash-2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 5, open)
	assert.Equal(t, 2, idle)
	assert.Equal(t, time.Hour, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 10, time.Minute, time.Minute)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}
