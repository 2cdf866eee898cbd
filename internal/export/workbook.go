// Package export renders generated combinations as an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const SummarySheet = "Combinations"

var (
	summaryHeader = []any{"#", "Combination", "Sections", "Courses", "Credits"}
	sessionHeader = []any{"Course", "Name", "Section", "Professor", "Type", "Day", "Start", "End", "Location", "Modality"}
	days          = []model.Day{model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday, model.Saturday, model.Sunday}
)

func SheetName(position int) string {
	return fmt.Sprintf("Combination %d", position)
}

// Workbook holds a summary sheet plus one sheet per combination with its weekly grid and its sessions
func Workbook(response model.Response) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	//** Summary
	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return nil, err
	}
	for index, combination := range response.Combinations {
		codes := lo.Map(combination.Courses, func(course model.CourseView, _ int) string { return course.CourseCode })
		row := []any{index + 1, combination.CombinationId, combination.IdString, strings.Join(codes, ", "), combination.TotalCredits}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", index+2), &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SummarySheet, "B", "D", 38); err != nil {
		return nil, err
	}

	//** Combinations
	for index, combination := range response.Combinations {
		sheet := SheetName(index + 1)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := writeCombination(f, sheet, combination, bold); err != nil {
			return nil, fmt.Errorf("%v: %w", sheet, err)
		}
	}

	return f, nil
}

func WriteFile(response model.Response, path string) error {
	f, err := Workbook(response)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func Write(response model.Response, writer io.Writer) error {
	f, err := Workbook(response)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(writer)
}

type placedSession struct {
	course  model.CourseView
	session model.SessionView
	day     model.Day
	start   model.Clock
	end     model.Clock
}

func writeCombination(f *excelize.File, sheet string, combination model.CombinationView, bold int) error {
	placed := make([]placedSession, 0)
	for _, course := range combination.Courses {
		for _, session := range course.Sessions {
			day, err := model.ParseDay(session.Day)
			if err != nil {
				return err
			}
			start, err := model.ParseClock(session.StartTime)
			if err != nil {
				return err
			}
			end, err := model.ParseClock(session.EndTime)
			if err != nil {
				return err
			}
			placed = append(placed, placedSession{course, session, day, start, end})
		}
	}
	slices.SortStableFunc(placed, func(a, b placedSession) int {
		if a.day != b.day {
			return int(a.day) - int(b.day)
		}
		return int(a.start) - int(b.start)
	})

	//** Weekly grid: one row per hour, a cell lists the courses taking place during that hour
	header := append([]any{"Time"}, lo.Map(days, func(day model.Day, _ int) any { return day.String() })...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	if len(placed) > 0 {
		first := lo.MinBy(placed, func(a, b placedSession) bool { return a.start < b.start }).start / 60
		last := (lo.MaxBy(placed, func(a, b placedSession) bool { return a.end > b.end }).end + 59) / 60

		for hour := first; hour < last; hour++ {
			from, to := model.NewClock(uint16(hour), 0), model.NewClock(uint16(hour+1), 0)

			cells := []any{fmt.Sprintf("%v-%v", from, to)}
			for _, day := range days {
				codes := lo.FilterMap(placed, func(p placedSession, _ int) (string, bool) {
					return p.course.CourseCode, p.day == day && p.start < to && from < p.end
				})
				cells = append(cells, strings.Join(codes, " / "))
			}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
	}

	//** Session listing
	row++
	listingRow := row
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &sessionHeader); err != nil {
		return err
	}
	for _, p := range placed {
		row++
		cells := []any{
			p.course.CourseCode, p.course.CourseName, p.course.SectionNumber, p.course.Professor,
			p.session.Type, p.session.Day, p.session.StartTime, p.session.EndTime, p.session.Location, p.session.Modality,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, listingRow, listingRow, bold); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "J", 16)
}
