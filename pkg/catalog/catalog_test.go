package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFile = "testdata/catalog.json"

func TestFromJson(t *testing.T) {
	catalog, err := FromJson(catalogFile)
	require.NoError(t, err)

	assert.Equal(t, "2024-2", catalog.Semester)
	require.Len(t, catalog.Courses, 2)
	assert.Equal(t, "CS1111", catalog.Courses[0].Code)
	assert.Equal(t, uint64(4), catalog.Courses[0].Credits)
	require.Len(t, catalog.Courses[0].Sections, 4)
	assert.Equal(t, uint64(30), catalog.Courses[0].Sections[0].Capacity)
	assert.Nil(t, catalog.Courses[0].Sections[0].Active)
	require.NotNil(t, catalog.Courses[0].Sections[3].Active)
	assert.False(t, *catalog.Courses[0].Sections[3].Active)

	_, err = FromJson("testdata/missing.json")
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	catalog, err := FromJson(catalogFile)
	require.NoError(t, err)

	entries, err := Entries(catalog)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	first := entries[0]
	assert.Equal(t, "CS1111", first.Course.Code)
	assert.True(t, first.Active)
	require.Len(t, first.Sessions, 2)
	assert.Equal(t, model.Monday, first.Sessions[0].Day)
	assert.Equal(t, model.Wednesday, first.Sessions[1].Day)
	assert.Equal(t, "10:00", first.Sessions[1].Start.String())
	assert.Equal(t, "Presencial", first.Sessions[1].Modality)
	assert.Equal(t, "Semanal", first.Sessions[1].Frequency)

	assert.False(t, entries[3].Active)
	assert.Equal(t, "General", entries[4].Course.Department)
	assert.Equal(t, "Quincenal", entries[4].Sessions[0].Frequency)
	assert.Equal(t, model.Thursday, entries[5].Sessions[0].Day)
}

func TestValidate(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"courses": []any{
				map[string]any{
					"course_id":   1,
					"course_code": "CS1111",
					"course_name": "Programación I",
					"credits":     4,
					"sections": []any{
						map[string]any{
							"section_id":     101,
							"section_number": "1",
							"sessions": []any{
								map[string]any{"day": "Lunes", "start_time": "08:00", "end_time": "10:00"},
							},
						},
					},
				},
			},
		}
	}
	session := func(input map[string]any) map[string]any {
		course := input["courses"].([]any)[0].(map[string]any)
		section := course["sections"].([]any)[0].(map[string]any)
		return section["sessions"].([]any)[0].(map[string]any)
	}

	_, err := Decode(valid())
	require.NoError(t, err)

	scenarios := map[string]func(input map[string]any){
		"Unknown day": func(input map[string]any) {
			session(input)["day"] = "Funday"
		},
		"Malformed time": func(input map[string]any) {
			session(input)["start_time"] = "8am"
		},
		"Session ending before it starts": func(input map[string]any) {
			session(input)["start_time"] = "10:00"
			session(input)["end_time"] = "09:00"
		},
		"Missing course code": func(input map[string]any) {
			delete(input["courses"].([]any)[0].(map[string]any), "course_code")
		},
		"Duplicated section": func(input map[string]any) {
			course := input["courses"].([]any)[0].(map[string]any)
			course["sections"] = append(course["sections"].([]any), course["sections"].([]any)[0])
		},
		"Duplicated course": func(input map[string]any) {
			input["courses"] = append(input["courses"].([]any), input["courses"].([]any)[0])
		},
	}

	for name, corrupt := range scenarios {
		t.Run(name, func(t *testing.T) {
			input := valid()
			corrupt(input)

			_, err := Decode(input)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestTranslateDay(t *testing.T) {
	scenarios := map[string]model.Day{
		"Lun":       model.Monday,
		"Lun.":      model.Monday,
		"lunes":     model.Monday,
		"Monday":    model.Monday,
		"Mar.":      model.Tuesday,
		"Mié":       model.Wednesday,
		"Miércoles": model.Wednesday,
		"Mie":       model.Wednesday,
		"JUEVES":    model.Thursday,
		"Vie.":      model.Friday,
		"Sáb":       model.Saturday,
		"Sábado":    model.Saturday,
		"Dom":       model.Sunday,
		" sunday ":  model.Sunday,
	}

	for name, expected := range scenarios {
		day, err := TranslateDay(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, day, name)
	}

	_, err := TranslateDay("Lu")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	catalog, err := FromJson(catalogFile)
	require.NoError(t, err)
	resolver, err := NewResolver(catalog)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Selection order is kept and duplicates are collapsed", func(t *testing.T) {
		options, err := resolver.Resolve(ctx, []uint64{201, 101, 102, 201})
		require.NoError(t, err)

		ids := lo.Map(options, func(option model.CourseOption, _ int) uint64 { return option.Section.Id })
		assert.Equal(t, []uint64{201, 101, 102}, ids)
		assert.Equal(t, "MA1001", options[0].Group)
	})

	t.Run("Sections without sessions are skipped", func(t *testing.T) {
		options, err := resolver.Resolve(ctx, []uint64{103})
		require.NoError(t, err)
		assert.Empty(t, options)
	})

	t.Run("Inactive section", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, []uint64{101, 104})
		assert.ErrorIs(t, err, ErrInvalidSectionSelection)
		assert.True(t, strings.Contains(err.Error(), "104"))
	})

	t.Run("Unknown section", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, []uint64{999})
		assert.ErrorIs(t, err, ErrInvalidSectionSelection)
	})

	t.Run("Empty selection", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := resolver.Resolve(cancelled, []uint64{101})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
