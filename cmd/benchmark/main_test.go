package main

import (
	"encoding/csv"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSize(t *testing.T) {
	assert.Equal(t, uint64(27), Scenario{Courses: 3, Sections: 3}.ProductSize())
	assert.Equal(t, uint64(1), Scenario{Courses: 0, Sections: 3}.ProductSize())
	assert.Equal(t, "5x4x2", Scenario{Courses: 5, Sections: 4, Sessions: 2}.Name())

	assert.Equal(t, uint64(1)<<63, Scenario{Courses: 63, Sections: 2}.ProductSize())
	assert.Equal(t, uint64(math.MaxUint64), Scenario{Courses: 64, Sections: 2}.ProductSize())
	assert.Equal(t, uint64(math.MaxUint64), Scenario{Courses: 30, Sections: 6}.ProductSize())
}

func TestRandomSelection(t *testing.T) {
	scenario := Scenario{Courses: 4, Sections: 3, Sessions: 2}
	options := randomSelection(scenario, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, options, 12)
	assert.Len(t, lo.Uniq(lo.Map(options, func(option model.CourseOption, _ int) string { return option.Group })), 4)
	for _, option := range options {
		assert.Len(t, option.Sessions, 2)
		for _, session := range option.Sessions {
			assert.Less(t, session.Start, session.End)
			assert.LessOrEqual(t, session.Day, model.Friday)
		}
	}
}

func TestToCsv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	scenario := Scenario{Courses: 3, Sections: 3, Sessions: 2}

	result := measure(scenario, 7)
	assert.LessOrEqual(t, uint64(result.Combinations), scenario.ProductSize())
	require.NoError(t, toCsv(path, []BenchmarkResult{result}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "3x3x2", records[1][0])
	assert.Equal(t, "27", records[1][5])
}
