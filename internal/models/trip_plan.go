package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTripPlan wraps every payload validation failure.
var ErrInvalidTripPlan = errors.New("invalid trip plan")

// Trip types offered by the planning wizard.
const (
	TripTypeCultural  = "cultural"
	TripTypeAdventure = "adventure"
	TripTypeSpiritual = "spiritual"
	TripTypeNature    = "nature"
	TripTypeFood      = "food"
)

// IsTripType reports whether s is one of the known trip types.
func IsTripType(s string) bool {
	switch s {
	case TripTypeCultural, TripTypeAdventure, TripTypeSpiritual, TripTypeNature, TripTypeFood:
		return true
	}
	return false
}

// StringList is a list of strings stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// TripPlanDB represents a persisted trip plan row.
type TripPlanDB struct {
	TripPlanID       uuid.UUID  `json:"id" db:"trip_plan_id"`
	UserID           uuid.UUID  `json:"user" db:"user_id"`
	Destinations     StringList `json:"destinations" db:"destinations"`
	NumberOfPeople   int        `json:"numberOfPeople" db:"number_of_people"`
	Budget           string     `json:"budget" db:"budget"`
	ItineraryText    string     `json:"itineraryText" db:"itinerary_text"`
	DurationDays     int        `json:"durationDays" db:"duration_days"`
	TripType         string     `json:"tripType" db:"trip_type"`
	SafetyMonitoring bool       `json:"safetyMonitoring" db:"safety_monitoring"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
}

// TripPlanRequest is the body of POST /api/tripplans.
// The planning client builds it from a plan and the server decodes it, so
// both sides share one shape.
// swagger:model TripPlanRequest
type TripPlanRequest struct {
	// required: true
	// example: ["Goa"]
	Destinations []string `json:"destinations"`

	// required: true
	// example: 2
	NumberOfPeople int `json:"numberOfPeople"`

	// required: true
	// example: luxury
	Budget string `json:"budget"`

	// required: true
	ItineraryText string `json:"itineraryText"`

	// example: 5
	DurationDays int `json:"durationDays,omitempty"`

	// example: adventure
	TripType string `json:"tripType,omitempty"`

	SafetyMonitoring bool `json:"safetyMonitoring,omitempty"`
}

// Validate checks the fields every stored plan must carry.
func (r TripPlanRequest) Validate() error {
	if len(r.Destinations) == 0 {
		return fmt.Errorf("%w: destinations are required", ErrInvalidTripPlan)
	}
	for _, d := range r.Destinations {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("%w: destination must not be blank", ErrInvalidTripPlan)
		}
	}
	if r.NumberOfPeople < 1 {
		return fmt.Errorf("%w: numberOfPeople must be at least 1", ErrInvalidTripPlan)
	}
	if strings.TrimSpace(r.Budget) == "" {
		return fmt.Errorf("%w: budget is required", ErrInvalidTripPlan)
	}
	if strings.TrimSpace(r.ItineraryText) == "" {
		return fmt.Errorf("%w: itineraryText is required", ErrInvalidTripPlan)
	}
	if r.DurationDays < 0 {
		return fmt.Errorf("%w: durationDays must not be negative", ErrInvalidTripPlan)
	}
	if r.TripType != "" && !IsTripType(r.TripType) {
		return fmt.Errorf("%w: unknown tripType %q", ErrInvalidTripPlan, r.TripType)
	}
	return nil
}
