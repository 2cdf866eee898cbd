package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var (
	ErrNoSessions       = errors.New("section has no sessions")
	ErrMalformedSession = errors.New("session must start before it ends")
)

// CourseOption is a single section competing for a place in a combination
type CourseOption struct {
	Section  Section
	Sessions []Session
	Course   Course
	Group    string // Always equal to Course.Code
}

// Sections without sessions cannot be scheduled and must be filtered out before reaching this point
func NewCourseOption(section Section, sessions []Session, course Course) (CourseOption, error) {
	if len(sessions) == 0 {
		return CourseOption{}, fmt.Errorf("section %v (%v) of course %v: %w", section.Number, section.Id, course.Code, ErrNoSessions)
	}

	if session, ok := lo.Find(sessions, func(session Session) bool { return session.Start >= session.End }); ok {
		return CourseOption{}, fmt.Errorf("session %v of section %v (%v %v-%v): %w", session.Id, section.Id, session.Day, session.Start, session.End, ErrMalformedSession)
	}

	return CourseOption{
		Section:  section,
		Sessions: slices.Clone(sessions),
		Course:   course,
		Group:    course.Code,
	}, nil
}

func MustCourseOption(section Section, sessions []Session, course Course) CourseOption {
	option, err := NewCourseOption(section, sessions, course)
	if err != nil {
		panic(err)
	}
	return option
}

// Checks whether both options cannot be part of the same combination, either because they belong to the same course or because some of their sessions overlap
func (option CourseOption) CollidesWith(other CourseOption) bool {
	if option.Group == other.Group {
		return true
	}

	return lo.SomeBy(option.Sessions, func(session1 Session) bool {
		return lo.SomeBy(other.Sessions, func(session2 Session) bool {
			return SessionsOverlap(session1, session2)
		})
	})
}

// Intervals are half-open, therefore back-to-back sessions do not overlap
func SessionsOverlap(session1, session2 Session) bool {
	return session1.Day == session2.Day &&
		session1.Start < session2.End &&
		session2.Start < session1.End
}
