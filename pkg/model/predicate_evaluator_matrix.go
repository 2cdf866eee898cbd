package model

type matrixPredicateEvaluator struct {
	options   []CourseOption
	conflicts [][]bool // Conflicts matrix' coordinate (i, j) = true if and only if options[i] collides with options[j]. Since every option collides with itself conflicts[i][i] = true for all i
}

func newMatrixPredicateEvaluator(options []CourseOption) *matrixPredicateEvaluator {
	conflicts := make([][]bool, len(options))
	for i := range options {
		conflicts[i] = make([]bool, len(options))
	}

	for i := range options {
		conflicts[i][i] = true
		for j := i + 1; j < len(options); j++ {
			// CollidesWith is symmetric, so only the upper triangle is evaluated
			if options[i].CollidesWith(options[j]) {
				conflicts[i][j] = true
				conflicts[j][i] = true
			}
		}
	}

	return &matrixPredicateEvaluator{
		options:   options,
		conflicts: conflicts,
	}
}

func (evaluator *matrixPredicateEvaluator) Collide(option1, option2 uint64) bool {
	return evaluator.conflicts[option1][option2]
}

func (evaluator *matrixPredicateEvaluator) SameCourse(option1, option2 uint64) bool {
	return evaluator.options[option1].Group == evaluator.options[option2].Group
}
