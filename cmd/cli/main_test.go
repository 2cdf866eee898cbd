package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/limaJavier/sectionplanner/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionIds(t *testing.T) {
	sectionIds, err := parseSectionIds([]string{"101,102", " 201 ", "202,", "101"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{101, 102, 201, 202, 101}, sectionIds)

	_, err = parseSectionIds([]string{"101,abc"})
	assert.Error(t, err)
}

func TestPickCombination(t *testing.T) {
	plan := planner.Plan{
		Combinations: []model.ScheduleCombination{
			{Token: "a", Key: "1_4"},
			{Token: "b", Key: "2_4"},
		},
	}

	combination, err := pickCombination(plan, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "2_4", combination.Key)

	combination, err = pickCombination(plan, 0, "a")
	require.NoError(t, err)
	assert.Equal(t, "1_4", combination.Key)

	_, err = pickCombination(plan, 0, "")
	assert.Error(t, err)
	_, err = pickCombination(plan, 3, "")
	assert.Error(t, err)
	_, err = pickCombination(plan, 1, "missing")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	//** Arrange
	dir := t.TempDir()
	catalogFile := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`{
  "courses": [
    {"course_id": 1, "course_code": "CS1111", "course_name": "Programación I", "credits": 4, "sections": [
      {"section_id": 1, "section_number": "1", "sessions": [{"session_id": 11, "day": "Lunes", "start_time": "08:00", "end_time": "10:00"}]},
      {"section_id": 2, "section_number": "2", "sessions": [{"session_id": 21, "day": "Martes", "start_time": "08:00", "end_time": "10:00"}]}
    ]},
    {"course_id": 2, "course_code": "MA1001", "course_name": "Cálculo I", "credits": 3, "sections": [
      {"section_id": 3, "section_number": "1", "sessions": [{"session_id": 31, "day": "Lun.", "start_time": "09:00", "end_time": "11:00"}]}
    ]}
  ]
}`), 0644))
	outFile := filepath.Join(dir, "combinations.json")

	//** Act
	var output bytes.Buffer
	rootCmd.SetOut(&output)
	rootCmd.SetArgs([]string{"generate", "--env", filepath.Join(dir, "missing.env"), "--catalog", catalogFile, "--out", outFile, "1,2", "3"})
	require.NoError(t, rootCmd.Execute())

	//** Assert
	content, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var response model.Response
	require.NoError(t, json.Unmarshal(content, &response))
	assert.Equal(t, uint64(1), response.TotalCombinations)
	assert.Equal(t, uint64(2), response.SelectedCoursesCount)
	assert.Equal(t, "2_3", response.Combinations[0].IdString)
	assert.Equal(t, uint64(7), response.Combinations[0].TotalCredits)
}
