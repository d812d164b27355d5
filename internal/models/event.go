package models

// TripPlanEvent is published to Kafka after a trip plan is stored.
type TripPlanEvent struct {
	EventID        string   `json:"event_id"`         // Unique event identifier
	Type           string   `json:"type"`             // Always "trip_plan.created" for now
	TripPlanID     string   `json:"trip_plan_id"`     // Stored plan id, also the message key
	UserID         string   `json:"user_id"`          // Owner of the plan
	Destinations   []string `json:"destinations"`     // Planned destinations
	NumberOfPeople int      `json:"number_of_people"` // Travellers
	Timestamp      int64    `json:"timestamp"`        // Unix seconds of creation
}
