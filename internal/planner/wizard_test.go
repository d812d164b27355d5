package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_OpenBlank(t *testing.T) {
	w := NewWizard()
	assert.False(t, w.IsOpen())

	w.Open(nil)

	assert.True(t, w.IsOpen())
	assert.Equal(t, StepDestination, w.Step())
	assert.Equal(t, NewDraft(), w.Draft())
	assert.Equal(t, 3, w.Draft().DurationDays)
	assert.Equal(t, 2, w.Draft().NumberOfPeople)
	assert.Equal(t, "cultural", w.Draft().TripType)
}

func TestWizard_OpenPrefilledCopiesDraft(t *testing.T) {
	initial := Draft{Destination: "Goa", DurationDays: 5, Budget: "luxury", TripType: "adventure", NumberOfPeople: 2}

	w := NewWizard()
	w.Open(&initial)
	require.NoError(t, w.SetNumberOfPeople(3))

	assert.Equal(t, 2, initial.NumberOfPeople)
	assert.Equal(t, 3, w.Draft().NumberOfPeople)
	assert.Equal(t, "Goa", w.Draft().Destination)
}

func TestWizard_NextRequiresDestination(t *testing.T) {
	w := NewWizard()
	w.Open(nil)

	assert.False(t, w.CanNext())
	assert.ErrorIs(t, w.Next(), ErrValidation)
	assert.Equal(t, StepDestination, w.Step())

	require.NoError(t, w.SetDestination("   "))
	assert.False(t, w.CanNext())

	require.NoError(t, w.SetDestination("Jaipur"))
	assert.True(t, w.CanNext())
	require.NoError(t, w.Next())
	assert.Equal(t, StepPreferences, w.Step())

	// steps 2 and 3 never block
	assert.True(t, w.CanNext())
	require.NoError(t, w.Next())
	assert.Equal(t, StepDetails, w.Step())

	assert.False(t, w.CanNext())
	assert.ErrorIs(t, w.Next(), ErrValidation)
}

func TestWizard_Previous(t *testing.T) {
	w := NewWizard()
	w.Open(&Draft{Destination: "Goa", DurationDays: 3, NumberOfPeople: 2, TripType: "food"})

	assert.False(t, w.CanPrevious())
	assert.ErrorIs(t, w.Previous(), ErrValidation)

	require.NoError(t, w.Next())
	assert.True(t, w.CanPrevious())
	require.NoError(t, w.Previous())
	assert.Equal(t, StepDestination, w.Step())
}

func TestWizard_SubmitOnlyFromLastStep(t *testing.T) {
	w := NewWizard()
	w.Open(nil)
	require.NoError(t, w.SetDestination("Goa"))

	for _, step := range []Step{StepDestination, StepPreferences} {
		assert.Equal(t, step, w.Step())
		assert.False(t, w.CanSubmit())
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrValidation)
		require.NoError(t, w.Next())
	}

	assert.True(t, w.CanSubmit())
	d, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Goa", d.Destination)
	assert.False(t, w.IsOpen())
}

func TestWizard_SubmitRevalidatesDestination(t *testing.T) {
	w := NewWizard()
	w.Open(nil)
	require.NoError(t, w.SetDestination("Goa"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.SetDestination(""))

	_, err := w.Submit()
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, w.IsOpen())
}

func TestWizard_Setters(t *testing.T) {
	tests := []struct {
		name    string
		set     func(w *Wizard) error
		wantErr bool
	}{
		{"duration min", func(w *Wizard) error { return w.SetDurationDays(1) }, false},
		{"duration max", func(w *Wizard) error { return w.SetDurationDays(21) }, false},
		{"duration zero", func(w *Wizard) error { return w.SetDurationDays(0) }, true},
		{"duration too long", func(w *Wizard) error { return w.SetDurationDays(22) }, true},
		{"people min", func(w *Wizard) error { return w.SetNumberOfPeople(1) }, false},
		{"people max", func(w *Wizard) error { return w.SetNumberOfPeople(10) }, false},
		{"people zero", func(w *Wizard) error { return w.SetNumberOfPeople(0) }, true},
		{"people too many", func(w *Wizard) error { return w.SetNumberOfPeople(11) }, true},
		{"trip type", func(w *Wizard) error { return w.SetTripType("spiritual") }, false},
		{"unknown trip type", func(w *Wizard) error { return w.SetTripType("beach") }, true},
		{"budget free text", func(w *Wizard) error { return w.SetBudget("mid-range") }, false},
		{"safety monitoring", func(w *Wizard) error { return w.SetSafetyMonitoring(true) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard()
			w.Open(nil)
			before := w.Draft()

			err := tt.set(w)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, before, w.Draft())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWizard_ClosedRejectsCalls(t *testing.T) {
	w := NewWizard()
	w.Open(nil)
	require.NoError(t, w.SetDestination("Goa"))
	w.Close()

	assert.False(t, w.IsOpen())
	assert.Equal(t, Draft{}, w.Draft())
	assert.ErrorIs(t, w.SetDestination("Goa"), ErrWizardClosed)
	assert.ErrorIs(t, w.SetBudget("budget"), ErrWizardClosed)
	assert.ErrorIs(t, w.Next(), ErrWizardClosed)
	assert.ErrorIs(t, w.Previous(), ErrWizardClosed)
	assert.False(t, w.CanNext())
	assert.False(t, w.CanSubmit())
	_, err := w.Submit()
	assert.ErrorIs(t, err, ErrWizardClosed)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "destination", StepDestination.String())
	assert.Equal(t, "preferences", StepPreferences.String())
	assert.Equal(t, "details", StepDetails.String())
	assert.Equal(t, "unknown", Step(0).String())
}

func TestWizard_SetDestinationTrims(t *testing.T) {
	w := NewWizard()
	w.Open(nil)

	require.NoError(t, w.SetDestination("  Goa "))
	assert.Equal(t, "Goa", w.Draft().Destination)
}
