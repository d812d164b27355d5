package planner

import (
	"fmt"
	"strings"
)

// Step is a wizard page.
type Step int

const (
	StepDestination Step = iota + 1
	StepPreferences
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepDestination:
		return "destination"
	case StepPreferences:
		return "preferences"
	case StepDetails:
		return "details"
	}
	return "unknown"
}

// Validate checks the fields the step requires before moving on.
// Only the destination step blocks.
func (s Step) Validate(d Draft) error {
	if s == StepDestination {
		return validateDestination(d.Destination)
	}
	return nil
}

// Wizard is the three-step form that collects a Draft.
// A new Wizard is closed; Open starts a session.
type Wizard struct {
	open  bool
	step  Step
	draft Draft
}

func NewWizard() *Wizard {
	return &Wizard{}
}

// Open resets the wizard to the first step with a copy of initial,
// or a blank draft when initial is nil.
func (w *Wizard) Open(initial *Draft) {
	w.open = true
	w.step = StepDestination
	if initial != nil {
		w.draft = *initial
	} else {
		w.draft = NewDraft()
	}
}

// Close discards the draft.
func (w *Wizard) Close() {
	w.open = false
	w.step = 0
	w.draft = Draft{}
}

func (w *Wizard) IsOpen() bool { return w.open }

func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the draft being edited.
func (w *Wizard) Draft() Draft { return w.draft }

// SetDestination stores destination without surrounding whitespace.
func (w *Wizard) SetDestination(destination string) error {
	if !w.open {
		return ErrWizardClosed
	}
	w.draft.Destination = strings.TrimSpace(destination)
	return nil
}

func (w *Wizard) SetDurationDays(days int) error {
	if !w.open {
		return ErrWizardClosed
	}
	if err := validateDurationDays(days); err != nil {
		return err
	}
	w.draft.DurationDays = days
	return nil
}

func (w *Wizard) SetBudget(budget string) error {
	if !w.open {
		return ErrWizardClosed
	}
	w.draft.Budget = budget
	return nil
}

func (w *Wizard) SetTripType(tripType string) error {
	if !w.open {
		return ErrWizardClosed
	}
	if err := validateTripType(tripType); err != nil {
		return err
	}
	w.draft.TripType = tripType
	return nil
}

func (w *Wizard) SetNumberOfPeople(n int) error {
	if !w.open {
		return ErrWizardClosed
	}
	if err := validateNumberOfPeople(n); err != nil {
		return err
	}
	w.draft.NumberOfPeople = n
	return nil
}

func (w *Wizard) SetSafetyMonitoring(enabled bool) error {
	if !w.open {
		return ErrWizardClosed
	}
	w.draft.SafetyMonitoring = enabled
	return nil
}

// CanNext reports whether Next would succeed.
func (w *Wizard) CanNext() bool {
	return w.open && w.step < StepDetails && w.step.Validate(w.draft) == nil
}

// Next advances one step once the current step is complete.
func (w *Wizard) Next() error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.step >= StepDetails {
		return fmt.Errorf("%w: already at the last step", ErrValidation)
	}
	if err := w.step.Validate(w.draft); err != nil {
		return err
	}
	w.step++
	return nil
}

func (w *Wizard) CanPrevious() bool {
	return w.open && w.step > StepDestination
}

// Previous goes back one step. It fails on the first step.
func (w *Wizard) Previous() error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.step <= StepDestination {
		return fmt.Errorf("%w: already at the first step", ErrValidation)
	}
	w.step--
	return nil
}

func (w *Wizard) CanSubmit() bool {
	return w.open && w.step == StepDetails
}

// Submit returns the completed draft and closes the wizard. Nothing is saved.
func (w *Wizard) Submit() (Draft, error) {
	if !w.open {
		return Draft{}, ErrWizardClosed
	}
	if w.step != StepDetails {
		return Draft{}, fmt.Errorf("%w: submit is only available on the last step", ErrValidation)
	}
	for s := StepDestination; s <= StepDetails; s++ {
		if err := s.Validate(w.draft); err != nil {
			return Draft{}, err
		}
	}

	d := w.draft
	w.Close()
	return d, nil
}
