package model

import (
	"context"
	"iter"

	"github.com/samber/lo"
)

type cartesianGenerator struct {
	tokens TokenIssuer
	limit  uint64
}

func (generator *cartesianGenerator) Generate(options []CourseOption) []ScheduleCombination {
	combinations := make([]ScheduleCombination, 0)
	for combination := range generator.All(options) {
		combinations = append(combinations, combination)
	}
	return combinations
}

// Cancellation is polled once every cancellationPeriod visited nodes
const cancellationPeriod = 256

func (generator *cartesianGenerator) GenerateContext(ctx context.Context, options []CourseOption) ([]ScheduleCombination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combinations := make([]ScheduleCombination, 0)
	for combination := range generator.all(ctx, options) {
		combinations = append(combinations, combination)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return combinations, nil
}

func (generator *cartesianGenerator) All(options []CourseOption) iter.Seq[ScheduleCombination] {
	return generator.all(context.Background(), options)
}

func (generator *cartesianGenerator) all(ctx context.Context, options []CourseOption) iter.Seq[ScheduleCombination] {
	return func(yield func(ScheduleCombination) bool) {
		if len(options) == 0 {
			return
		}

		//** Group options by course
		groups := groupOptions(options)
		domains := lo.Map(groups, func(group []uint64, _ int) uint64 { return uint64(len(group)) })

		//** Initialize dependencies
		evaluator := newPredicateEvaluator(options)
		indexer := newIndexer(domains)
		permutations := newPermutationGenerator(domains)

		state := constraintState{
			evaluator: evaluator,
			groups:    groups,
		}

		constraints := []func(permutation []uint64) bool{
			noConflictConstraint(state),
		}
		if ctx.Done() != nil {
			constraints = append([]func(permutation []uint64) bool{notCancelledConstraint(ctx, cancellationPeriod)}, constraints...)
		}

		//** Expand and filter
		produced := uint64(0)
		permutations.ConstrainedPermutations(
			constraints,
			func(permutation []uint64) bool {
				members := make([]CourseOption, len(permutation))
				for group, choice := range permutation {
					members[group] = options[groups[group][choice]]
				}

				combination := newScheduleCombination(members, generator.tokens)
				combination.Ordinal = indexer.Index(permutation)
				if !yield(combination) {
					return false
				}

				produced++
				return generator.limit == 0 || produced < generator.limit
			},
		)
	}
}

// Partitions the options by course into groups holding their indices. Groups follow the order in which their course was first seen and keep the input order inside.
// Only the first option carrying a given section id is kept
func groupOptions(options []CourseOption) [][]uint64 {
	unique := lo.UniqBy(lo.Range(len(options)), func(index int) uint64 { return options[index].Section.Id })
	codes := lo.Uniq(lo.Map(unique, func(index int, _ int) string { return options[index].Group }))
	indices := lo.GroupBy(unique, func(index int) string { return options[index].Group })

	return lo.Map(codes, func(code string, _ int) []uint64 {
		return lo.Map(indices[code], func(index int, _ int) uint64 { return uint64(index) })
	})
}
