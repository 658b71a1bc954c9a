package pathplan

import (
	"errors"
	"fmt"
)

// Configuration errors, detected once at the start of a solve call.
var (
	ErrInvalidStart         = errors.New("no valid initial states")
	ErrInvalidGoal          = errors.New("goal region cannot produce samples")
	ErrUnrecognizedGoalType = errors.New("problem goal is not sampleable")
)

// PlannerError is a solve failure carrying its planner status.
type PlannerError struct {
	Status Status
	Err    error
}

func (e *PlannerError) Error() string {
	return fmt.Sprintf("%s: %v", plannerName, e.Err)
}

func (e *PlannerError) Unwrap() error { return e.Err }

func statusError(status Status, err error) *PlannerError {
	return &PlannerError{Status: status, Err: err}
}
