package model

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type ScheduleCombination struct {
	Token        string         // Externally visible identifier
	Key          string         // Sorted section ids joined by "_"
	Ordinal      uint64         // Position of the tuple within the full cartesian product (math.MaxUint64 if it cannot be represented)
	Options      []CourseOption // Sorted by section id
	TotalCredits uint64
	CourseCount  uint64
}

func newScheduleCombination(members []CourseOption, tokens TokenIssuer) ScheduleCombination {
	options := slices.Clone(members)
	slices.SortStableFunc(options, func(a, b CourseOption) int {
		return cmp.Compare(a.Section.Id, b.Section.Id)
	})

	key := CombinationKey(options)
	return ScheduleCombination{
		Token:        tokens.Issue(key),
		Key:          key,
		Options:      options,
		TotalCredits: lo.SumBy(options, func(option CourseOption) uint64 { return option.Course.Credits }),
		CourseCount:  uint64(len(options)),
	}
}

// Builds the stable identifier of a set of options (order is irrelevant)
func CombinationKey(options []CourseOption) string {
	ids := lo.Map(options, func(option CourseOption, _ int) uint64 { return option.Section.Id })
	slices.Sort(ids)
	return strings.Join(lo.Map(ids, func(id uint64, _ int) string { return strconv.FormatUint(id, 10) }), "_")
}
