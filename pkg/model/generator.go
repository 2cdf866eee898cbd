package model

import (
	"context"
	"iter"
)

// CombinationGenerator builds every conflict-free combination holding exactly one option of each course present in the input.
//
// Combinations are produced in depth-first cartesian order: course groups in first-seen order and options inside a group in input order.
// Options repeating a section id are taken once, at their first occurrence.
// Apart from tokens (see TokenIssuer), identical inputs always produce identical outputs
type CombinationGenerator interface {
	Generate(options []CourseOption) []ScheduleCombination

	// Like Generate, but enumeration stops (returning ctx.Err()) once ctx is done, even when no combination is being produced
	GenerateContext(ctx context.Context, options []CourseOption) ([]ScheduleCombination, error)

	// Lazy version of Generate. Every range over the returned sequence enumerates again from the start
	All(options []CourseOption) iter.Seq[ScheduleCombination]
}

type GeneratorOption func(generator *cartesianGenerator)

// Defaults to RandomTokens
func WithTokenIssuer(tokens TokenIssuer) GeneratorOption {
	return func(generator *cartesianGenerator) {
		generator.tokens = tokens
	}
}

// Caps the amount of combinations produced per call, where 0 stands for no limit
func WithLimit(limit uint64) GeneratorOption {
	return func(generator *cartesianGenerator) {
		generator.limit = limit
	}
}

func NewCombinationGenerator(opts ...GeneratorOption) CombinationGenerator {
	generator := &cartesianGenerator{
		tokens: RandomTokens(),
	}
	for _, opt := range opts {
		opt(generator)
	}
	return generator
}
