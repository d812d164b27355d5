package planner

import (
	"html/template"
	"strings"
)

const fallbackDestination = "your chosen destination"

// The itinerary is a fixed three-day outline; only the destination varies.
var itineraryTemplate = template.Must(template.New("itinerary").Parse(
	`<h3 class="text-lg font-semibold mb-2">Day 1: Arrival and Exploration</h3>
<p class="mb-4">Arrive at {{.}}. Check into your hotel and enjoy a relaxing evening exploring the local markets.</p>
<h3 class="text-lg font-semibold mb-2">Day 2: Sightseeing</h3>
<p class="mb-4">Visit the most famous landmarks and enjoy a traditional lunch. In the evening, experience a local cultural show.</p>
<h3 class="text-lg font-semibold mb-2">Day 3: Departure</h3>
<p>Enjoy a final breakfast before departing for your next adventure. We hope you had a wonderful time!</p>
`))

// GenerateItinerary renders the itinerary markup for d. Only the
// destination is used; it is HTML-escaped.
func GenerateItinerary(d Draft) string {
	destination := strings.TrimSpace(d.Destination)
	if destination == "" {
		destination = fallbackDestination
	}

	var b strings.Builder
	// strings.Builder writes never fail.
	_ = itineraryTemplate.Execute(&b, destination)
	return b.String()
}
