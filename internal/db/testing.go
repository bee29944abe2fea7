package db

import (
	"context"
	"os"
	"registration/internal/db/migrations"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL, or to a throwaway Postgres
// container when the variable is unset, and applies migrations. The test is
// skipped in short mode or when no database can be reached.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping DB test in short mode.")
	}

	ctx := context.Background()
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		connString = startPostgresContainer(t)
	}

	err := migrations.Up(connString)
	if err != nil {
		t.Fatalf("Could not apply DB migrations: %v.", err)
	}

	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		t.Fatalf("Could not connect to the database: %v.", err)
	}
	return pool
}

func startPostgresContainer(t *testing.T) string {
	ctx := context.Background()
	container, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("user_registration"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("Postgres container is not available: %v.", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Could not terminate Postgres container: %v.", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Could not get container connection string: %v.", err)
	}
	return connString
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE users")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
