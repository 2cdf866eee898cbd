package catalog

import (
	"fmt"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
)

const (
	defaultModality  = "Presencial"
	defaultFrequency = "Semanal"
)

// Entry is a section of the catalog translated into the model's vocabulary
type Entry struct {
	Course   model.Course
	Section  model.Section
	Sessions []model.Session
	Active   bool
}

// Translates every section of the catalog, in catalog order
func Entries(catalog Catalog) ([]Entry, error) {
	entries := make([]Entry, 0)
	for _, rawCourse := range catalog.Courses {
		course := model.Course{
			Id:         rawCourse.Id,
			Code:       rawCourse.Code,
			Name:       rawCourse.Name,
			Credits:    rawCourse.Credits,
			Department: lo.Ternary(rawCourse.Department == "", "General", rawCourse.Department),
		}

		for _, rawSection := range rawCourse.Sections {
			sessions := make([]model.Session, 0, len(rawSection.Sessions))
			for _, rawSession := range rawSection.Sessions {
				session, err := toSession(rawSession)
				if err != nil {
					return nil, fmt.Errorf("section %v of course %v: %w", rawSection.Id, rawCourse.Code, err)
				}
				sessions = append(sessions, session)
			}

			entries = append(entries, Entry{
				Course: course,
				Section: model.Section{
					Id:        rawSection.Id,
					Number:    rawSection.Number,
					Capacity:  rawSection.Capacity,
					Enrolled:  rawSection.Enrolled,
					Professor: rawSection.Professor,
				},
				Sessions: sessions,
				Active:   rawSection.Active == nil || *rawSection.Active,
			})
		}
	}
	return entries, nil
}

func toSession(rawSession RawSession) (model.Session, error) {
	day, err := TranslateDay(rawSession.Day)
	if err != nil {
		return model.Session{}, err
	}
	start, err := model.ParseClock(rawSession.StartTime)
	if err != nil {
		return model.Session{}, err
	}
	end, err := model.ParseClock(rawSession.EndTime)
	if err != nil {
		return model.Session{}, err
	}

	return model.Session{
		Id:        rawSession.Id,
		Type:      rawSession.Type,
		Day:       day,
		Start:     start,
		End:       end,
		Location:  rawSession.Location,
		Building:  rawSession.Building,
		Room:      rawSession.Room,
		Modality:  lo.Ternary(rawSession.Modality == "", defaultModality, rawSession.Modality),
		Frequency: lo.Ternary(rawSession.Frequency == "", defaultFrequency, rawSession.Frequency),
	}, nil
}
