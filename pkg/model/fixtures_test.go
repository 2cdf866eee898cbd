package model

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

func testSession(day Day, start, end string) Session {
	startClock, err := ParseClock(start)
	if err != nil {
		panic(err)
	}
	endClock, err := ParseClock(end)
	if err != nil {
		panic(err)
	}
	return Session{Day: day, Start: startClock, End: endClock, Type: "Teoría", Modality: "Presencial"}
}

func testOption(sectionId uint64, code string, credits uint64, sessions ...Session) CourseOption {
	for i := range sessions {
		sessions[i].Id = sectionId*10 + uint64(i)
	}
	return MustCourseOption(
		Section{Id: sectionId, Number: fmt.Sprint(sectionId), Professor: "Prof. " + code},
		sessions,
		Course{Id: uint64(len(code)), Code: code, Name: "Course " + code, Credits: credits},
	)
}

// Builds random options of up to 4 courses with up to 4 sections each, every section holding up to 3 sessions on the first days of the week
func randomOptions(random *rand.Rand) []CourseOption {
	options := make([]CourseOption, 0)
	sectionId := uint64(1)
	courses := random.IntN(4) + 1

	for course := range courses {
		code := fmt.Sprintf("C%d", course)
		for range random.IntN(4) + 1 {
			sessions := make([]Session, 0)
			for range random.IntN(3) + 1 {
				start := uint16(8 + random.IntN(9))
				duration := uint16(1 + random.IntN(3))
				sessions = append(sessions, Session{
					Day:   Day(random.IntN(3)),
					Start: NewClock(start, 0),
					End:   NewClock(start+duration, 0),
				})
			}
			options = append(options, testOption(sectionId, code, uint64(course+1), sessions...))
			sectionId++
		}
	}

	// Interleave courses so that first-seen order differs from course order
	random.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

// Reference implementation: full cartesian product followed by a pairwise filter
func bruteForceKeys(options []CourseOption) []string {
	codes := make([]string, 0)
	groups := make(map[string][]CourseOption)
	for _, option := range options {
		if _, ok := groups[option.Group]; !ok {
			codes = append(codes, option.Group)
		}
		groups[option.Group] = append(groups[option.Group], option)
	}

	keys := make([]string, 0)
	var expand func(depth int, chosen []CourseOption)
	expand = func(depth int, chosen []CourseOption) {
		if depth == len(codes) {
			for i := range chosen {
				for j := range chosen {
					if i != j && chosen[i].CollidesWith(chosen[j]) {
						return
					}
				}
			}
			keys = append(keys, CombinationKey(chosen))
			return
		}
		for _, option := range groups[codes[depth]] {
			expand(depth+1, append(slices.Clone(chosen), option))
		}
	}
	if len(codes) > 0 {
		expand(0, nil)
	}
	return keys
}

func combinationKeys(combinations []ScheduleCombination) []string {
	keys := make([]string, 0, len(combinations))
	for _, combination := range combinations {
		keys = append(keys, combination.Key)
	}
	return keys
}
