package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
)

var (
	ErrEmptySelection          = errors.New("at least one section must be selected")
	ErrInvalidSectionSelection = errors.New("section not found or not active")
)

// Resolver turns the section ids selected by a student into course options.
//
// Implementations must reject unknown or inactive sections with ErrInvalidSectionSelection, collapse repeated ids,
// keep the selection order and silently skip sections without sessions
type Resolver interface {
	Resolve(ctx context.Context, sectionIds []uint64) ([]model.CourseOption, error)
}

type memoryResolver struct {
	entries map[uint64]Entry
}

// Builds a resolver backed by the (already validated) catalog
func NewResolver(catalog Catalog) (Resolver, error) {
	entries, err := Entries(catalog)
	if err != nil {
		return nil, err
	}

	return &memoryResolver{
		entries: lo.KeyBy(entries, func(entry Entry) uint64 { return entry.Section.Id }),
	}, nil
}

func (resolver *memoryResolver) Resolve(ctx context.Context, sectionIds []uint64) ([]model.CourseOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ResolveEntries(sectionIds, func(sectionId uint64) (Entry, bool) {
		entry, ok := resolver.entries[sectionId]
		return entry, ok
	})
}

// Shared resolution rules for every Resolver implementation, where lookup finds the entry of a section
func ResolveEntries(sectionIds []uint64, lookup func(sectionId uint64) (Entry, bool)) ([]model.CourseOption, error) {
	if len(sectionIds) == 0 {
		return nil, ErrEmptySelection
	}

	options := make([]model.CourseOption, 0, len(sectionIds))
	for _, sectionId := range lo.Uniq(sectionIds) {
		entry, ok := lookup(sectionId)
		if !ok || !entry.Active {
			return nil, fmt.Errorf("section %v: %w", sectionId, ErrInvalidSectionSelection)
		}

		// Sections without sessions cannot be scheduled
		if len(entry.Sessions) == 0 {
			continue
		}

		option, err := model.NewCourseOption(entry.Section, entry.Sessions, entry.Course)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	return options, nil
}
