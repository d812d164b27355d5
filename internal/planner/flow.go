package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

//go:generate mockgen -source=flow.go -destination=flow_mock.go -package=planner

// Screen is the view the flow is showing.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenWizard
	ScreenPreview
	ScreenBooking
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenWizard:
		return "wizard"
	case ScreenPreview:
		return "preview"
	case ScreenBooking:
		return "booking"
	}
	return "unknown"
}

// TripPlanSaver sends a plan to the Trip Plan API.
type TripPlanSaver interface {
	CreateTripPlan(ctx context.Context, token string, req models.TripPlanRequest) (*models.TripPlanDB, error)
}

// Flow moves a plan between the wizard, the preview and the booking screen
// and saves it through a TripPlanSaver.
type Flow struct {
	mu      sync.Mutex
	session *Session
	saver   TripPlanSaver
	wizard  *Wizard
	screen  Screen
	plan    *Plan
	saving  bool

	now   func() time.Time
	newID func() string
}

// Opt configures a Flow.
type Opt func(*Flow)

// WithClock sets the source of plan creation times.
func WithClock(now func() time.Time) Opt {
	return func(f *Flow) {
		f.now = now
	}
}

// WithIDGenerator sets the source of plan ids.
func WithIDGenerator(newID func() string) Opt {
	return func(f *Flow) {
		f.newID = newID
	}
}

// NewFlow creates a Flow on the home screen.
func NewFlow(session *Session, saver TripPlanSaver, opts ...Opt) *Flow {
	f := &Flow{
		session: session,
		saver:   saver,
		wizard:  NewWizard(),
		screen:  ScreenHome,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Wizard returns the wizard driven by this flow.
func (f *Flow) Wizard() *Wizard { return f.wizard }

func (f *Flow) Screen() Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.screen
}

// Plan returns a copy of the current plan.
func (f *Flow) Plan() (Plan, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.plan == nil {
		return Plan{}, false
	}
	return *f.plan, true
}

// StartPlanning opens a blank wizard. It requires a logged-in user.
func (f *Flow) StartPlanning() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.session.Active() {
		return ErrUnauthorized
	}
	f.plan = nil
	f.wizard.Open(nil)
	f.screen = ScreenWizard
	return nil
}

// SubmitWizard turns the wizard draft into the current plan and opens the
// preview. A plan being edited keeps its ID and CreatedAt.
func (f *Flow) SubmitWizard() (Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	draft, err := f.wizard.Submit()
	if err != nil {
		return Plan{}, err
	}

	if f.plan != nil {
		f.plan.Draft = draft
		f.plan.ItineraryText = ""
	} else {
		f.plan = &Plan{
			Draft:     draft,
			ID:        f.newID(),
			UserID:    f.session.UserID(),
			CreatedAt: f.now(),
		}
	}
	f.screen = ScreenPreview
	return *f.plan, nil
}

// CloseWizard discards the wizard's edits. An existing plan is shown again
// unchanged.
func (f *Flow) CloseWizard() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.wizard.Close()
	if f.plan != nil {
		f.screen = ScreenPreview
	} else {
		f.screen = ScreenHome
	}
}

// Preview returns the itinerary markup for the current plan.
func (f *Flow) Preview() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.plan == nil {
		return "", ErrNoPlan
	}
	return GenerateItinerary(f.plan.Draft), nil
}

// Save posts the current plan with a freshly generated itinerary. It is only
// available from the preview. On success the plan is cleared and the flow
// returns home. On failure the preview stays open and Save may be called again.
// Edit, Book and ClosePreview are refused until the request returns.
func (f *Flow) Save(ctx context.Context) (*models.TripPlanDB, error) {
	f.mu.Lock()
	if f.saving {
		f.mu.Unlock()
		return nil, ErrSaveInProgress
	}
	if f.plan == nil {
		f.mu.Unlock()
		return nil, ErrNoPlan
	}
	if f.screen != ScreenPreview {
		f.mu.Unlock()
		return nil, ErrNotInPreview
	}
	if !f.session.Active() {
		f.mu.Unlock()
		return nil, ErrUnauthorized
	}

	f.plan.ItineraryText = GenerateItinerary(f.plan.Draft)
	req := f.plan.Request()
	if err := req.Validate(); err != nil {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token := f.session.Token()
	current := f.plan
	f.saving = true
	f.mu.Unlock()

	saved, err := f.saver.CreateTripPlan(ctx, token, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = false

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// Logout or a new plan may have replaced this one meanwhile.
	if f.plan == current && f.screen == ScreenPreview {
		f.plan = nil
		f.screen = ScreenHome
	}
	return saved, nil
}

// Edit reopens the wizard with the current plan's fields.
func (f *Flow) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saving {
		return ErrSaveInProgress
	}
	if f.plan == nil {
		return ErrNoPlan
	}
	draft := f.plan.Draft
	f.wizard.Open(&draft)
	f.screen = ScreenWizard
	return nil
}

// Book discards the current plan without saving and opens the booking screen.
func (f *Flow) Book() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saving {
		return ErrSaveInProgress
	}
	if f.plan == nil {
		return ErrNoPlan
	}
	f.plan = nil
	f.screen = ScreenBooking
	return nil
}

// ClosePreview drops the current plan and returns home.
func (f *Flow) ClosePreview() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saving {
		return ErrSaveInProgress
	}
	f.plan = nil
	f.screen = ScreenHome
	return nil
}

// Logout ends the session and forgets any plan in progress.
func (f *Flow) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session.Clear()
	f.wizard.Close()
	f.plan = nil
	f.screen = ScreenHome
}
