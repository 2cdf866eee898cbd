package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
)

type RawSession struct {
	Id        uint64 `mapstructure:"session_id"`
	Type      string `mapstructure:"session_type"`
	Day       string `mapstructure:"day" validate:"required,weekday"`
	StartTime string `mapstructure:"start_time" validate:"required,clock"`
	EndTime   string `mapstructure:"end_time" validate:"required,clock"`
	Location  string `mapstructure:"location"`
	Building  string `mapstructure:"building"`
	Room      string `mapstructure:"room"`
	Modality  string `mapstructure:"modality"`
	Frequency string `mapstructure:"frequency"`
}

type RawSection struct {
	Id        uint64       `mapstructure:"section_id" validate:"required"`
	Number    string       `mapstructure:"section_number" validate:"required,max=10"`
	Capacity  uint64       `mapstructure:"capacity"`
	Enrolled  uint64       `mapstructure:"enrolled"`
	Professor string       `mapstructure:"professor"`
	Active    *bool        `mapstructure:"is_active"` // Sections are active unless stated otherwise
	Sessions  []RawSession `mapstructure:"sessions" validate:"dive"`
}

type RawCourse struct {
	Id         uint64       `mapstructure:"course_id" validate:"required"`
	Code       string       `mapstructure:"course_code" validate:"required,max=20"`
	Name       string       `mapstructure:"course_name" validate:"required"`
	Credits    uint64       `mapstructure:"credits"`
	Department string       `mapstructure:"department"`
	Sections   []RawSection `mapstructure:"sections" validate:"dive"`
}

type Catalog struct {
	University string      `mapstructure:"university"`
	Semester   string      `mapstructure:"semester"`
	Courses    []RawCourse `mapstructure:"courses" validate:"dive"`
}

func FromJson(file string) (Catalog, error) {
	reader, err := os.Open(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("cannot open catalog file: %w", err)
	}
	defer reader.Close()

	return FromReader(reader)
}

func FromReader(reader io.Reader) (Catalog, error) {
	var inputJson map[string]any
	if err := json.NewDecoder(reader).Decode(&inputJson); err != nil {
		return Catalog{}, fmt.Errorf("cannot parse catalog: %w", err)
	}
	return Decode(inputJson)
}

// Decodes and validates a catalog from its generic (e.g. JSON) representation
func Decode(input map[string]any) (Catalog, error) {
	var catalog Catalog
	if err := mapstructure.Decode(input, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("cannot decode catalog: %w", err)
	}

	if err := Validate(catalog); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}
