package model

type predicateEvaluator interface {
	// Checks whether option1 and option2 (indices into the generator's input) cannot belong to the same combination
	Collide(option1, option2 uint64) bool

	// Checks whether option1 and option2 belong to the same course
	SameCourse(option1, option2 uint64) bool
}

func newPredicateEvaluator(options []CourseOption) predicateEvaluator {
	return newMatrixPredicateEvaluator(options)
}
