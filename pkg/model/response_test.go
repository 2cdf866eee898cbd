package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse(t *testing.T) {
	//** Arrange
	options := []CourseOption{
		testOption(1, "CS101", 4, testSession(Monday, "08:00", "10:00")),
		testOption(2, "CS101", 4, testSession(Tuesday, "08:00", "10:00")),
		testOption(3, "MA101", 3, testSession(Monday, "09:00", "11:00"), testSession(Thursday, "14:30", "16:00")),
	}
	combinations := NewCombinationGenerator(WithTokenIssuer(DeterministicTokens(TokenNamespace))).Generate(options)

	//** Act
	response := BuildResponse(combinations, options)

	//** Assert
	assert.Equal(t, uint64(1), response.TotalCombinations)
	assert.Equal(t, uint64(2), response.SelectedCoursesCount)
	require.Len(t, response.Combinations, 1)

	combination := response.Combinations[0]
	assert.Equal(t, "2_3", combination.IdString)
	assert.Equal(t, combinations[0].Token, combination.CombinationId)
	assert.Equal(t, uint64(7), combination.TotalCredits)
	require.Len(t, combination.Courses, 2)
	assert.Equal(t, "MA101", combination.Courses[1].CourseCode)
	assert.Equal(t, []SessionView{
		{SessionId: 30, Type: "Teoría", Day: "Monday", StartTime: "09:00", EndTime: "11:00", Modality: "Presencial"},
		{SessionId: 31, Type: "Teoría", Day: "Thursday", StartTime: "14:30", EndTime: "16:00", Modality: "Presencial"},
	}, combination.Courses[1].Sessions)
}

func TestResponseJson(t *testing.T) {
	options := []CourseOption{testOption(5, "CS101", 4, testSession(Friday, "07:00", "08:30"))}
	response := BuildResponse(NewCombinationGenerator().Generate(options), options)

	bytes, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(bytes, &decoded))
	assert.EqualValues(t, 1, decoded["total_combinations"])
	assert.EqualValues(t, 1, decoded["selected_courses_count"])

	combination := decoded["combinations"].([]any)[0].(map[string]any)
	assert.Equal(t, "5", combination["id_string"])
	assert.NotEmpty(t, combination["combination_id"])

	session := combination["courses"].([]any)[0].(map[string]any)["sessions"].([]any)[0].(map[string]any)
	assert.Equal(t, "Friday", session["day"])
	assert.Equal(t, "07:00", session["start_time"])
	assert.Equal(t, "08:30", session["end_time"])
}

func TestEmptyResponse(t *testing.T) {
	response := BuildResponse(NewCombinationGenerator().Generate(nil), nil)

	bytes, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"combinations": [], "total_combinations": 0, "selected_courses_count": 0}`, string(bytes))
}
