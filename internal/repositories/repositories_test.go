package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable PostgreSQL and applies the schema.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	assert.NoError(t, Migrate(context.Background(), db))
}

func TestMigrate_Error(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	mock.ExpectExec("CREATE EXTENSION").WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), db)
	assert.EqualError(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation}
	other := &pgconn.PgError{Code: "23503"}
	plain := errors.New("boom")

	assert.ErrorIs(t, mapError(dup), ErrDuplicate)
	assert.ErrorIs(t, mapError(fmt.Errorf("wrapped: %w", dup)), ErrDuplicate)
	assert.NotErrorIs(t, mapError(other), ErrDuplicate)
	assert.Equal(t, plain, mapError(plain))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "SELECT a FROM t WHERE x = $1", oneLine("\n\tSELECT a\n\t\tFROM t\n WHERE x = $1\n"))
}
