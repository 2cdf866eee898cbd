package model

import (
	"fmt"
	"testing"
)

// Every course offers its sections on a different day, so no pair of courses collides and the whole product survives
func benchmarkOptions(courses, sections int) []CourseOption {
	options := make([]CourseOption, 0, courses*sections)
	for course := range courses {
		for section := range sections {
			start := uint16(7 + section)
			options = append(options, testOption(
				uint64(course*sections+section+1),
				fmt.Sprintf("C%d", course),
				3,
				Session{Day: Day(course % 7), Start: NewClock(start+uint16(course/7)*2, 0), End: NewClock(start+uint16(course/7)*2+1, 0)},
			))
		}
	}
	return options
}

func BenchmarkGenerate(b *testing.B) {
	for _, scenario := range [][2]int{{3, 3}, {5, 3}, {6, 4}} {
		options := benchmarkOptions(scenario[0], scenario[1])
		generator := NewCombinationGenerator(WithTokenIssuer(DeterministicTokens(TokenNamespace)))

		b.Run(fmt.Sprintf("%dx%d", scenario[0], scenario[1]), func(b *testing.B) {
			for b.Loop() {
				generator.Generate(options)
			}
		})
	}
}
