package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateItinerary(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		destination string
	}{
		{"plain", Draft{Destination: "Goa"}, "Goa"},
		{"multi word", Draft{Destination: "Leh Ladakh"}, "Leh Ladakh"},
		{"escaped", Draft{Destination: "Rishikesh & <Haridwar>"}, "Rishikesh &amp; &lt;Haridwar&gt;"},
		{"empty", Draft{}, "your chosen destination"},
		{"blank", Draft{Destination: "  "}, "your chosen destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateItinerary(tt.draft)

			assert.Equal(t, 1, strings.Count(got, tt.destination))
			assert.Equal(t, 3, strings.Count(got, "<h3"))
			assert.Contains(t, got, "Day 1: Arrival and Exploration")
			assert.Contains(t, got, "Day 2: Sightseeing")
			assert.Contains(t, got, "Day 3: Departure")
			assert.Contains(t, got, "Arrive at "+tt.destination+".")
		})
	}
}

func TestGenerateItinerary_IgnoresOtherFields(t *testing.T) {
	a := Draft{Destination: "Goa", DurationDays: 5, Budget: "luxury", TripType: "adventure", NumberOfPeople: 2}
	b := Draft{Destination: "Goa", DurationDays: 14, Budget: "budget", TripType: "food", NumberOfPeople: 9, SafetyMonitoring: true}

	assert.Equal(t, GenerateItinerary(a), GenerateItinerary(b))
	assert.Equal(t, GenerateItinerary(a), GenerateItinerary(a))
}
