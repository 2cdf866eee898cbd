package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

var validate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("weekday", func(field validator.FieldLevel) bool {
		_, err := TranslateDay(field.Field().String())
		return err == nil
	})
	validate.RegisterValidation("clock", func(field validator.FieldLevel) bool {
		_, err := model.ParseClock(field.Field().String())
		return err == nil
	})

	validate.RegisterStructValidation(func(level validator.StructLevel) {
		session := level.Current().Interface().(RawSession)
		start, startErr := model.ParseClock(session.StartTime)
		end, endErr := model.ParseClock(session.EndTime)
		if startErr == nil && endErr == nil && start >= end {
			level.ReportError(session.EndTime, "EndTime", "end_time", "gtstart", session.StartTime)
		}
	}, RawSession{})

	return validate
}

// Checks field constraints, that every session starts before it ends and that course codes and section ids are unique
func Validate(catalog Catalog) error {
	if err := validate.Struct(catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	codes := make(map[string]bool)
	sections := make(map[uint64]bool)
	for _, course := range catalog.Courses {
		if codes[course.Code] {
			return fmt.Errorf("%w: course code \"%v\" is present more than once", ErrInvalidCatalog, course.Code)
		}
		codes[course.Code] = true

		for _, section := range course.Sections {
			if sections[section.Id] {
				return fmt.Errorf("%w: section %v is present more than once", ErrInvalidCatalog, section.Id)
			}
			sections[section.Id] = true
		}
	}

	return nil
}
