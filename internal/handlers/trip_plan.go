package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/sbilibin2017/gw-trip-planner/internal/services"
)

//go:generate mockgen -source=trip_plan.go -destination=trip_plan_mock.go -package=handlers

// TripPlanCreator stores a trip plan for a user.
type TripPlanCreator interface {
	Create(ctx context.Context, userID uuid.UUID, plan models.TripPlanRequest) (*models.TripPlanDB, error)
}

// TripPlanLister lists a user's trip plans.
type TripPlanLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TripPlanDB, error)
}

// CreateTripPlanResponse represents a stored trip plan
// swagger:model CreateTripPlanResponse
type CreateTripPlanResponse struct {
	// Success message
	// default: Trip plan saved successfully
	Message string `json:"message"`

	// Stored plan
	TripPlan *models.TripPlanDB `json:"tripPlan"`
}

// ListTripPlansResponse lists the caller's plans, newest first
// swagger:model ListTripPlansResponse
type ListTripPlansResponse struct {
	TripPlans []models.TripPlanDB `json:"tripPlans"`
}

// NewCreateTripPlanHandler returns an HTTP handler that saves a trip plan.
// Every call creates a new record.
// @Summary Save a trip plan
// @Description Stores the submitted plan owned by the authenticated user.
// @Tags tripplans
// @Accept json
// @Produce json
// @Param request body models.TripPlanRequest true "Trip plan"
// @Success 201 {object} handlers.CreateTripPlanResponse "Trip plan saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Server error while saving trip plan"
// @Router /tripplans [post]
// @Security BearerAuth
func NewCreateTripPlanHandler(svc TripPlanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.TripPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode trip plan request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		saved, err := svc.Create(ctx, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTripPlan):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to save trip plan", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Server error while saving trip plan")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateTripPlanResponse{
			Message:  "Trip plan saved successfully",
			TripPlan: saved,
		})
	}
}

// NewListTripPlansHandler returns an HTTP handler listing the caller's plans.
// @Summary List trip plans
// @Tags tripplans
// @Produce json
// @Success 200 {object} handlers.ListTripPlansResponse "Trip plans"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /tripplans [get]
// @Security BearerAuth
func NewListTripPlansHandler(svc TripPlanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		plans, err := svc.List(ctx, userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if plans == nil {
			plans = []models.TripPlanDB{}
		}

		writeJSON(w, http.StatusOK, ListTripPlansResponse{TripPlans: plans})
	}
}
