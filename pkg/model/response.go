package model

import (
	"github.com/samber/lo"
)

type SessionView struct {
	SessionId uint64 `json:"session_id"`
	Type      string `json:"session_type"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Modality  string `json:"modality"`
}

type CourseView struct {
	CourseId      uint64        `json:"course_id"`
	CourseCode    string        `json:"course_code"`
	CourseName    string        `json:"course_name"`
	SectionId     uint64        `json:"section_id"`
	SectionNumber string        `json:"section_number"`
	Credits       uint64        `json:"credits"`
	Professor     string        `json:"professor"`
	Sessions      []SessionView `json:"sessions"`
}

type CombinationView struct {
	CombinationId string       `json:"combination_id"`
	IdString      string       `json:"id_string"`
	TotalCredits  uint64       `json:"total_credits"`
	CourseCount   uint64       `json:"course_count"`
	Courses       []CourseView `json:"courses"`
}

type Response struct {
	Combinations         []CombinationView `json:"combinations"`
	TotalCombinations    uint64            `json:"total_combinations"`
	SelectedCoursesCount uint64            `json:"selected_courses_count"`
}

// Renders the combinations produced from options
func BuildResponse(combinations []ScheduleCombination, options []CourseOption) Response {
	return Response{
		Combinations:         lo.Map(combinations, func(combination ScheduleCombination, _ int) CombinationView { return NewCombinationView(combination) }),
		TotalCombinations:    uint64(len(combinations)),
		SelectedCoursesCount: uint64(len(lo.Uniq(lo.Map(options, func(option CourseOption, _ int) string { return option.Group })))),
	}
}

func NewCombinationView(combination ScheduleCombination) CombinationView {
	return CombinationView{
		CombinationId: combination.Token,
		IdString:      combination.Key,
		TotalCredits:  combination.TotalCredits,
		CourseCount:   combination.CourseCount,
		Courses: lo.Map(combination.Options, func(option CourseOption, _ int) CourseView {
			return CourseView{
				CourseId:      option.Course.Id,
				CourseCode:    option.Course.Code,
				CourseName:    option.Course.Name,
				SectionId:     option.Section.Id,
				SectionNumber: option.Section.Number,
				Credits:       option.Course.Credits,
				Professor:     option.Section.Professor,
				Sessions: lo.Map(option.Sessions, func(session Session, _ int) SessionView {
					return SessionView{
						SessionId: session.Id,
						Type:      session.Type,
						Day:       session.Day.String(),
						StartTime: session.Start.String(),
						EndTime:   session.End.String(),
						Location:  session.Location,
						Modality:  session.Modality,
					}
				}),
			}
		}),
	}
}
