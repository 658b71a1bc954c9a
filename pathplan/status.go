package pathplan

// Status is the terminal outcome of a solve call.
type Status int

const (
	// StatusUnknown means the planner has not produced an outcome.
	StatusUnknown Status = iota
	// StatusExactSolution means a feasible path from start to goal was found.
	StatusExactSolution
	// StatusTimeout means the termination condition tripped before a
	// solution was found.
	StatusTimeout
	// StatusInvalidStart means no initial state passed validity checking.
	StatusInvalidStart
	// StatusInvalidGoal means the goal region cannot produce any sample.
	StatusInvalidGoal
	// StatusUnrecognizedGoalType means the problem has no sampleable goal.
	StatusUnrecognizedGoalType
)

func (s Status) String() string {
	switch s {
	case StatusExactSolution:
		return "exact solution"
	case StatusTimeout:
		return "timeout"
	case StatusInvalidStart:
		return "invalid start"
	case StatusInvalidGoal:
		return "invalid goal"
	case StatusUnrecognizedGoalType:
		return "unrecognized goal type"
	default:
		return "unknown"
	}
}
