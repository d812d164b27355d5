package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

const tripPlanColumns = `trip_plan_id, user_id, destinations, number_of_people, budget,
	itinerary_text, duration_days, trip_type, safety_monitoring, created_at`

// TripPlanWriteRepository inserts trip plans. Every call creates a new row.
type TripPlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTripPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TripPlanWriteRepository {
	return &TripPlanWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts plan for userID; created_at is assigned by the database.
func (r *TripPlanWriteRepository) Save(ctx context.Context, userID uuid.UUID, plan models.TripPlanRequest) (*models.TripPlanDB, error) {
	query := `
		INSERT INTO trip_plans (trip_plan_id, user_id, destinations, number_of_people, budget,
			itinerary_text, duration_days, trip_type, safety_monitoring, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + tripPlanColumns

	args := []any{
		uuid.New(), userID, models.StringList(plan.Destinations), plan.NumberOfPeople, plan.Budget,
		plan.ItineraryText, plan.DurationDays, plan.TripType, plan.SafetyMonitoring,
	}

	var saved models.TripPlanDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID, plan.Destinations, plan.NumberOfPeople, plan.Budget},
		"result", saved.TripPlanID,
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// TripPlanReadRepository reads trip plans.
type TripPlanReadRepository struct {
	db *sqlx.DB
}

func NewTripPlanReadRepository(db *sqlx.DB) *TripPlanReadRepository {
	return &TripPlanReadRepository{db: db}
}

// ListByUserID returns the user's plans, newest first.
func (r *TripPlanReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TripPlanDB, error) {
	query := `SELECT ` + tripPlanColumns + ` FROM trip_plans WHERE user_id = $1 ORDER BY created_at DESC`

	plans := []models.TripPlanDB{}
	err := r.db.SelectContext(ctx, &plans, query, userID)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID},
		"result", len(plans),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return plans, nil
}
