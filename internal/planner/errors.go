package planner

import "errors"

var (
	// ErrValidation is returned when a draft or plan is missing required data.
	// No request is sent when it occurs.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when an operation needs an active session.
	ErrUnauthorized = errors.New("please log in to continue")
	// ErrPersistence wraps failures of the save request itself.
	ErrPersistence = errors.New("failed to save trip plan")
	// ErrSaveInProgress is returned when Save is called while a save is outstanding.
	ErrSaveInProgress = errors.New("a save is already in progress")
	// ErrWizardClosed is returned by wizard calls made while it is closed.
	ErrWizardClosed = errors.New("wizard is closed")
	// ErrNotInPreview is returned by Save outside the preview screen.
	ErrNotInPreview = errors.New("trip plan can only be saved from the preview")
	// ErrNoPlan is returned when the flow has no current plan.
	ErrNoPlan = errors.New("no trip plan in progress")
)
