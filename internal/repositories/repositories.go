package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolation = "23505"

// schema creates the users, trip_plans and wishlist_items tables.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS trip_plans (
		trip_plan_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		destinations JSONB NOT NULL,
		number_of_people INTEGER NOT NULL,
		budget TEXT NOT NULL,
		itinerary_text TEXT NOT NULL,
		duration_days INTEGER NOT NULL DEFAULT 0,
		trip_type TEXT NOT NULL DEFAULT '',
		safety_monitoring BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS trip_plans_user_id_idx ON trip_plans (user_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS wishlist_items (
		wishlist_item_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		destination_id TEXT NOT NULL,
		destination_name TEXT NOT NULL,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, destination_id)
	);`,
}

// Migrate creates any missing tables. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logger.Log.Infow("migration",
			"sql", oneLine(stmt),
			"error", err,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// executor returns the request transaction when one is present in ctx.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError converts driver errors the services care about into sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
