package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Active())

	s.Start("token", "user-1", "alice")
	assert.True(t, s.Active())
	assert.Equal(t, "token", s.Token())
	assert.Equal(t, "user-1", s.UserID())
	assert.Equal(t, "alice", s.Username())

	s.Clear()
	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.UserID())
}

func TestPlan_Request(t *testing.T) {
	p := Plan{
		Draft:         Draft{Destination: "Goa", DurationDays: 5, Budget: "luxury", TripType: "adventure", NumberOfPeople: 2, SafetyMonitoring: true},
		ID:            "plan-1",
		ItineraryText: "<h3>x</h3>",
	}

	req := p.Request()
	assert.Equal(t, []string{"Goa"}, req.Destinations)
	assert.Equal(t, 2, req.NumberOfPeople)
	assert.Equal(t, "luxury", req.Budget)
	assert.Equal(t, 5, req.DurationDays)
	assert.Equal(t, "adventure", req.TripType)
	assert.True(t, req.SafetyMonitoring)
	assert.Equal(t, "<h3>x</h3>", req.ItineraryText)
}

func TestPlan_RequestTrimsDestination(t *testing.T) {
	p := Plan{Draft: Draft{Destination: "  Goa \t", NumberOfPeople: 1, Budget: "low"}}
	assert.Equal(t, []string{"Goa"}, p.Request().Destinations)
}
