package model

import "math"

type permutationGenerator interface {
	// permutation[i] holds the option chosen inside the i-th group.
	// All the constraints must take into account that if the value of permutation[i] (for all feasible i's) is math.MaxUint64 then the i-th group has not been chosen yet.
	// Permutations holding every constraint are handed to yield in lexicographic order; the slice is reused, so yield must copy it if it wants to keep it.
	// Generation stops as soon as yield returns false
	//
	// Example:
	//
	//	generator := newPermutationGenerator([]uint64{3, 2})
	//
	//	generator.ConstrainedPermutations([]func(permutation []uint64) bool{
	//				func(permutation []uint64) bool {
	//	       		// Verify "permutation[1] == math.MaxUint64", since the predicate "permutation[1] == 1" relies in this index
	//					return permutation[1] == math.MaxUint64 || permutation[1] == 1
	//				},
	//			}, func(permutation []uint64) bool {
	//				fmt.Println(permutation) // [0 1], [1 1], [2 1]
	//				return true
	//			})
	ConstrainedPermutations(constraints []func(permutation []uint64) bool, yield func(permutation []uint64) bool)
}

func newPermutationGenerator(domains []uint64) permutationGenerator {
	return permutationGeneratorImplementation{domains}
}

type permutationGeneratorImplementation struct {
	domains []uint64
}

func (generator permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []uint64) bool, yield func(permutation []uint64) bool) {
	if len(generator.domains) == 0 {
		return
	}

	permutation := make([]uint64, len(generator.domains))
	for i := range permutation {
		permutation[i] = math.MaxUint64
	}

	generator.constrainedPermutations(constraints, 0, permutation, yield)
}

// Returns false when generation must stop
func (generator permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []uint64) bool,
	currentDomain int,
	permutation []uint64,
	yield func(permutation []uint64) bool) bool {

	if currentDomain >= len(generator.domains) {
		return yield(permutation)
	}

	for i := uint64(0); i < generator.domains[currentDomain]; i++ {
		permutation[currentDomain] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		if !generator.constrainedPermutations(constraints, currentDomain+1, permutation, yield) {
			permutation[currentDomain] = math.MaxUint64
			return false
		}
	}

	permutation[currentDomain] = math.MaxUint64
	return true
}
