package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/limaJavier/sectionplanner/pkg/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Day names as they show up in university exports: english names, spanish names and their abbreviations.
// Keys are lower-case and without accents
var dayNames = map[string]model.Day{
	"monday": model.Monday, "mon": model.Monday, "lunes": model.Monday, "lun": model.Monday,
	"tuesday": model.Tuesday, "tue": model.Tuesday, "martes": model.Tuesday, "mar": model.Tuesday,
	"wednesday": model.Wednesday, "wed": model.Wednesday, "miercoles": model.Wednesday, "mie": model.Wednesday,
	"thursday": model.Thursday, "thu": model.Thursday, "jueves": model.Thursday, "jue": model.Thursday,
	"friday": model.Friday, "fri": model.Friday, "viernes": model.Friday, "vie": model.Friday,
	"saturday": model.Saturday, "sat": model.Saturday, "sabado": model.Saturday, "sab": model.Saturday,
	"sunday": model.Sunday, "sun": model.Sunday, "domingo": model.Sunday, "dom": model.Sunday,
}

// Translates a localized day name (e.g. "Lun.", "Miércoles", "Sáb", "friday") into its canonical day
func TranslateDay(name string) (model.Day, error) {
	day, ok := dayNames[normalizeDay(name)]
	if !ok {
		return 0, fmt.Errorf("unknown day \"%v\"", name)
	}
	return day, nil
}

func normalizeDay(name string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(stripAccents, name)
	if err != nil {
		normalized = name
	}
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(normalized)), ".")
}
