package planner

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

const (
	MinDurationDays     = 1
	MaxDurationDays     = 21
	DefaultDurationDays = 3

	MinPeople     = 1
	MaxPeople     = 10
	DefaultPeople = 2

	DefaultTripType = models.TripTypeCultural
)

// Draft is an unsaved trip plan edited through the wizard.
type Draft struct {
	Destination      string
	DurationDays     int
	Budget           string
	TripType         string
	NumberOfPeople   int
	SafetyMonitoring bool
}

// NewDraft returns a blank draft with the wizard defaults.
func NewDraft() Draft {
	return Draft{
		DurationDays:   DefaultDurationDays,
		TripType:       DefaultTripType,
		NumberOfPeople: DefaultPeople,
	}
}

func validateDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	return nil
}

func validateDurationDays(days int) error {
	if days < MinDurationDays || days > MaxDurationDays {
		return fmt.Errorf("%w: duration must be between %d and %d days", ErrValidation, MinDurationDays, MaxDurationDays)
	}
	return nil
}

func validateNumberOfPeople(n int) error {
	if n < MinPeople || n > MaxPeople {
		return fmt.Errorf("%w: number of people must be between %d and %d", ErrValidation, MinPeople, MaxPeople)
	}
	return nil
}

func validateTripType(t string) error {
	if !models.IsTripType(t) {
		return fmt.Errorf("%w: unknown trip type %q", ErrValidation, t)
	}
	return nil
}
