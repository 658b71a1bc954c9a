package pathplan

import (
	"context"
	"time"
)

// Condition tells the planner when to give up. It is polled cooperatively,
// once per main-loop iteration and inside the blocking goal-sample wait, and
// must eventually report true for the solve loop to be guaranteed to exit.
type Condition func() bool

// Never returns a condition that never trips. Use only when a solution is
// known to exist.
func Never() Condition {
	return func() bool { return false }
}

// After returns a condition that trips once d has elapsed from this call.
func After(d time.Duration) Condition {
	deadline := time.Now().Add(d)
	return func() bool { return time.Now().After(deadline) }
}

// FromContext returns a condition that trips when ctx is done.
func FromContext(ctx context.Context) Condition {
	return func() bool { return ctx.Err() != nil }
}

// Any returns a condition that trips when any of the given conditions trip.
func Any(conds ...Condition) Condition {
	return func() bool {
		for _, c := range conds {
			if c() {
				return true
			}
		}
		return false
	}
}
