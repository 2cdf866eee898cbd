package model

import (
	"math"
	"math/bits"
)

// indexer interface is design to give a unique index to every tuple of the cartesian product of the course groups.
// Indices follow the generator's traversal order, so the first group is the most significant digit
type indexer interface {
	// Returns the unique index of a tuple, where choices[i] is the option chosen inside the i-th group
	Index(choices []uint64) uint64
	// Returns the amount of tuples in the cartesian product or math.MaxUint64 if it cannot be represented
	Size() uint64
}

func newIndexer(domains []uint64) indexer {
	weights := make([]uint64, len(domains))
	size, overflow := uint64(1), false

	// Weights are built from the least significant group (the last one)
	for i := len(domains) - 1; i >= 0; i-- {
		weights[i] = size
		hi, low := bits.Mul64(size, domains[i])
		if hi != 0 {
			overflow = true
		}
		size = low
	}

	if overflow {
		size = math.MaxUint64
	}

	return &indexerImplementation{
		weights:  weights,
		size:     size,
		overflow: overflow,
	}
}

type indexerImplementation struct {
	weights  []uint64
	size     uint64
	overflow bool
}

func (indexer *indexerImplementation) Index(choices []uint64) uint64 {
	if indexer.overflow {
		return math.MaxUint64
	}

	index := uint64(0)
	for i, choice := range choices {
		index += choice * indexer.weights[i]
	}
	return index
}

func (indexer *indexerImplementation) Size() uint64 {
	return indexer.size
}
