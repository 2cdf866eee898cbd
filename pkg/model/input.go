package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (day Day) String() string {
	if int(day) >= len(dayNames) {
		return fmt.Sprintf("Day(%d)", uint8(day))
	}
	return dayNames[day]
}

// Returns the day whose canonical (english) name matches the given one, ignoring case.
// Localized names and abbreviations are not accepted here, they must be translated by the caller
func ParseDay(name string) (Day, error) {
	_, index, ok := lo.FindIndexOf(dayNames, func(dayName string) bool {
		return strings.EqualFold(dayName, strings.TrimSpace(name))
	})
	if !ok {
		return 0, fmt.Errorf("unknown day \"%v\"", name)
	}
	return Day(index), nil
}

// Clock is a wall-clock time expressed in minutes since midnight
type Clock uint16

func NewClock(hour, minute uint16) Clock {
	return Clock(hour*60 + minute)
}

// Parses "HH:MM" (seconds, as in "HH:MM:SS", are accepted and ignored)
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time \"%v\": expected HH:MM", value)
	}

	hour, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("invalid hour in time \"%v\"", value)
	}
	minute, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time \"%v\"", value)
	}

	return NewClock(uint16(hour), uint16(minute)), nil
}

func (clock Clock) String() string {
	return fmt.Sprintf("%02d:%02d", clock/60, clock%60)
}

type Session struct {
	Id        uint64
	Type      string
	Day       Day
	Start     Clock
	End       Clock
	Location  string
	Building  string
	Room      string
	Modality  string
	Frequency string
}

type Section struct {
	Id        uint64
	Number    string
	Capacity  uint64
	Enrolled  uint64
	Professor string
}

type Course struct {
	Id         uint64
	Code       string // Grouping key: two sections of the same course can never be taken together
	Name       string
	Credits    uint64
	Department string
}
