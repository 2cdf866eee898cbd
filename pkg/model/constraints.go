package model

import (
	"context"
	"math"
)

type constraintState struct {
	evaluator predicateEvaluator
	groups    [][]uint64 // Indices (into the generator's input) of the options of each course group, in first-seen order
}

// The most recently chosen member must not collide with any of the members chosen before it.
// Since the permutation generator checks this after every choice, a complete permutation holding it is free of conflicting pairs
func noConflictConstraint(state constraintState) func(permutation []uint64) bool {
	return func(permutation []uint64) bool {
		current := lastChosen(permutation)
		if current < 0 {
			return true
		}

		option := state.groups[current][permutation[current]]
		for previous := range current {
			previousOption := state.groups[previous][permutation[previous]]

			if state.evaluator.SameCourse(option, previousOption) || state.evaluator.Collide(option, previousOption) {
				return false
			}
		}
		return true
	}
}

// Returns the position of the last chosen group or -1 if none has been chosen yet
func lastChosen(permutation []uint64) int {
	for i := len(permutation) - 1; i >= 0; i-- {
		if permutation[i] != math.MaxUint64 {
			return i
		}
	}
	return -1
}

// Rejects every node once ctx is done, which unwinds the whole search. ctx is polled every period calls
func notCancelledConstraint(ctx context.Context, period uint64) func(permutation []uint64) bool {
	calls, cancelled := uint64(0), false
	return func([]uint64) bool {
		if cancelled {
			return false
		}
		calls++
		if calls%period == 0 && ctx.Err() != nil {
			cancelled = true
		}
		return !cancelled
	}
}
