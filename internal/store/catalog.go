package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/limaJavier/sectionplanner/pkg/catalog"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMissingSessionId = errors.New("stored sessions must carry an id")

type ImportSummary struct {
	Courses  int
	Sections int
	Sessions int
}

// Import upserts every course and section of the catalog. Sessions of an imported section are replaced as a whole
func (repository *Repository) Import(ctx context.Context, catalogue catalog.Catalog) (ImportSummary, error) {
	entries, err := catalog.Entries(catalogue)
	if err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	err = repository.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := func(value any) error {
			return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
		}
		courses := make(map[uint64]bool)

		for _, entry := range entries {
			if !courses[entry.Course.Id] {
				course := toCourseRow(entry.Course)
				if err := upsert(&course); err != nil {
					return fmt.Errorf("course %v: %w", entry.Course.Code, err)
				}
				courses[entry.Course.Id] = true
				summary.Courses++
			}

			section := toSectionRow(entry)
			if err := upsert(&section); err != nil {
				return fmt.Errorf("section %v: %w", entry.Section.Id, err)
			}
			summary.Sections++

			if err := tx.Where("section_id = ?", section.ID).Delete(&Session{}).Error; err != nil {
				return err
			}
			if len(entry.Sessions) == 0 {
				continue
			}

			sessions := make([]Session, 0, len(entry.Sessions))
			for position, session := range entry.Sessions {
				if session.Id == 0 {
					return fmt.Errorf("section %v: %w", entry.Section.Id, ErrMissingSessionId)
				}
				sessions = append(sessions, toSessionRow(section.ID, position, session))
			}
			if err := tx.Create(&sessions).Error; err != nil {
				return fmt.Errorf("sessions of section %v: %w", entry.Section.Id, err)
			}
			summary.Sessions += len(sessions)
		}
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}
	return summary, nil
}

// Resolve implements catalog.Resolver on top of the stored catalog
func (repository *Repository) Resolve(ctx context.Context, sectionIds []uint64) ([]model.CourseOption, error) {
	if len(sectionIds) == 0 {
		return nil, catalog.ErrEmptySelection
	}

	var sections []Section
	err := repository.db.WithContext(ctx).
		Preload("Course").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id IN ?", lo.Uniq(sectionIds)).
		Find(&sections).Error
	if err != nil {
		return nil, err
	}

	entries := make(map[uint64]catalog.Entry, len(sections))
	for _, section := range sections {
		entry, err := toEntry(section)
		if err != nil {
			return nil, err
		}
		entries[section.ID] = entry
	}

	return catalog.ResolveEntries(sectionIds, func(sectionId uint64) (catalog.Entry, bool) {
		entry, ok := entries[sectionId]
		return entry, ok
	})
}

func toCourseRow(course model.Course) Course {
	return Course{
		ID:         course.Id,
		Code:       course.Code,
		Name:       course.Name,
		Credits:    course.Credits,
		Department: course.Department,
	}
}

func toSectionRow(entry catalog.Entry) Section {
	return Section{
		ID:        entry.Section.Id,
		CourseID:  entry.Course.Id,
		Number:    entry.Section.Number,
		Capacity:  entry.Section.Capacity,
		Enrolled:  entry.Section.Enrolled,
		Professor: entry.Section.Professor,
		Active:    entry.Active,
	}
}

func toSessionRow(sectionId uint64, position int, session model.Session) Session {
	return Session{
		ID:        session.Id,
		SectionID: sectionId,
		Position:  position,
		Type:      session.Type,
		Day:       session.Day.String(),
		StartTime: session.Start.String(),
		EndTime:   session.End.String(),
		Location:  session.Location,
		Building:  session.Building,
		Room:      session.Room,
		Modality:  session.Modality,
		Frequency: session.Frequency,
	}
}

func toEntry(section Section) (catalog.Entry, error) {
	sessions := make([]model.Session, 0, len(section.Sessions))
	for _, row := range section.Sessions {
		day, err := model.ParseDay(row.Day)
		if err != nil {
			return catalog.Entry{}, fmt.Errorf("session %v: %w", row.ID, err)
		}
		start, err := model.ParseClock(row.StartTime)
		if err != nil {
			return catalog.Entry{}, fmt.Errorf("session %v: %w", row.ID, err)
		}
		end, err := model.ParseClock(row.EndTime)
		if err != nil {
			return catalog.Entry{}, fmt.Errorf("session %v: %w", row.ID, err)
		}

		sessions = append(sessions, model.Session{
			Id:        row.ID,
			Type:      row.Type,
			Day:       day,
			Start:     start,
			End:       end,
			Location:  row.Location,
			Building:  row.Building,
			Room:      row.Room,
			Modality:  row.Modality,
			Frequency: row.Frequency,
		})
	}

	return catalog.Entry{
		Course: model.Course{
			Id:         section.Course.ID,
			Code:       section.Course.Code,
			Name:       section.Course.Name,
			Credits:    section.Course.Credits,
			Department: section.Course.Department,
		},
		Section: model.Section{
			Id:        section.ID,
			Number:    section.Number,
			Capacity:  section.Capacity,
			Enrolled:  section.Enrolled,
			Professor: section.Professor,
		},
		Sessions: sessions,
		Active:   section.Active,
	}, nil
}
