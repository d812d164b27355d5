package planner

import (
	"strings"
	"time"

	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

// Plan is a submitted draft with a stable identity. ID and CreatedAt are
// kept when the plan is edited and resubmitted.
type Plan struct {
	Draft
	ID            string
	UserID        string
	CreatedAt     time.Time
	ItineraryText string
}

// Request converts the plan to the POST /api/tripplans payload.
func (p Plan) Request() models.TripPlanRequest {
	return models.TripPlanRequest{
		Destinations:     []string{strings.TrimSpace(p.Destination)},
		NumberOfPeople:   p.NumberOfPeople,
		Budget:           p.Budget,
		ItineraryText:    p.ItineraryText,
		DurationDays:     p.DurationDays,
		TripType:         p.TripType,
		SafetyMonitoring: p.SafetyMonitoring,
	}
}
