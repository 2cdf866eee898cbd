package model

import (
	"github.com/samber/lo"
)

// Checks that every combination:
//   - holds exactly one member of each course group present in options
//   - holds only members that belong to options
//   - has no pair of members colliding
//   - reports its credits, course count and key consistently
//
// and that no two combinations share the same key
func Verify(combinations []ScheduleCombination, options []CourseOption) bool {
	// Repeated section ids count once, as in generation
	options = lo.UniqBy(options, func(option CourseOption) uint64 { return option.Section.Id })
	groups := lo.Uniq(lo.Map(options, func(option CourseOption, _ int) string { return option.Group }))
	evaluator := newPredicateEvaluator(options)

	// Section ids are now unique, so they identify the options
	indices := make(map[uint64]uint64, len(options))
	for index, option := range options {
		indices[option.Section.Id] = uint64(index)
	}

	keys := make(map[string]bool, len(combinations))
	for _, combination := range combinations {
		if len(combination.Options) != len(groups) ||
			combination.CourseCount != uint64(len(groups)) ||
			combination.Key != CombinationKey(combination.Options) ||
			keys[combination.Key] {
			return false
		}
		keys[combination.Key] = true

		members := make([]uint64, 0, len(combination.Options))
		for _, option := range combination.Options {
			index, ok := indices[option.Section.Id]
			if !ok {
				return false
			}
			members = append(members, index)
		}

		// Every group is represented exactly once
		represented := lo.Uniq(lo.Map(combination.Options, func(option CourseOption, _ int) string { return option.Group }))
		if len(represented) != len(groups) || len(lo.Intersect(represented, groups)) != len(groups) {
			return false
		}

		for i := range len(members) - 1 {
			for j := i + 1; j < len(members); j++ {
				if evaluator.SameCourse(members[i], members[j]) || evaluator.Collide(members[i], members[j]) {
					return false
				}
			}
		}

		credits := lo.SumBy(combination.Options, func(option CourseOption) uint64 { return option.Course.Credits })
		if credits != combination.TotalCredits {
			return false
		}
	}

	return true
}
