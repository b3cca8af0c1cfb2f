package tables

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/indiaviz/dataserver/internal/core"
)

// EraRanges maps era names to their conventional year ranges. Rows whose
// era appears here get the range as their time period instead of a single
// formatted year.
var EraRanges = map[string]string{
	"Indus Valley Civilization": "2600-1900 BCE",
	"Vedic Period":              "1500-600 BCE",
	"Mauryan Empire":            "322-185 BCE",
	"Post-Mauryan Period":       "185 BCE-320 CE",
	"Gupta Empire":              "320-550 CE",
	"Post-Gupta Period":         "550-1206 CE",
	"Delhi Sultanate":           "1206-1526 CE",
	"Vijayanagara Empire":       "1336-1646 CE",
	"Mughal Empire":             "1526-1857 CE",
	"Maratha Empire":            "1674-1818 CE",
	"Colonial Era":              "1757-1947 CE",
	"British Raj":               "1858-1947 CE",
	"Independence Movement":     "1885-1947 CE",
	"Republic of India":         "1950-Present",
	"Post-Independence":         "1950-1991 CE",
	"Economic Reforms":          "1991-2014 CE",
	"Modern India":              "2014-Present",
	"Ancient India":             "600-320 BCE",
	"Medieval India":            "712-1757 CE",
	"Age of Exploration":        "1498-1600 CE",
	"Independence":              "1947-1950 CE",
}

// EraCapitals maps era names to their seats of power.
var EraCapitals = map[string]string{
	"Indus Valley Civilization": "Harappa, Mohenjo-daro",
	"Vedic Period":              "Various tribal capitals",
	"Mauryan Empire":            "Pataliputra (modern Patna)",
	"Gupta Empire":              "Pataliputra (modern Patna)",
	"Delhi Sultanate":           "Delhi",
	"Vijayanagara Empire":       "Hampi",
	"Mughal Empire":             "Agra, Delhi, Fatehpur Sikri",
	"Maratha Empire":            "Raigad, Pune",
	"Colonial Era":              "Calcutta, Delhi",
	"British Raj":               "Calcutta (until 1911), Delhi",
	"Republic of India":         "New Delhi",
	"Post-Independence":         "New Delhi",
	"Modern India":              "New Delhi",
	"Ancient India":             "Various regional capitals",
	"Medieval India":            "Various regional capitals",
	"Post-Mauryan Period":       "Various regional capitals",
	"Post-Gupta Period":         "Kannauj, Thanesar",
	"Independence Movement":     "N/A (political movement)",
	"Independence":              "New Delhi",
	"Economic Reforms":          "New Delhi",
	"Age of Exploration":        "European trading posts",
}

// EraCategories groups era names into the four broad periods used for
// timeline coloring.
var EraCategories = map[string][]string{
	"Ancient":   {"Indus Valley Civilization", "Vedic Period", "Mahajanapadas", "Ancient India"},
	"Classical": {"Mauryan Empire", "Post-Mauryan Period", "Gupta Empire"},
	"Medieval":  {"Post-Gupta Period", "Medieval India", "Delhi Sultanate", "Vijayanagara Empire", "Mughal Empire", "Maratha Empire"},
	"Modern":    {"Colonial Era", "British Raj", "Independence Movement", "Independence", "Republic of India", "Post-Independence", "Economic Reforms", "Modern India", "Age of Exploration"},
}

// LegacyThemes are the recurring themes scanned for in Historical Legacy
// narratives.
var LegacyThemes = []string{
	"Cultural", "Religious", "Administrative", "Scientific",
	"Architectural", "Political", "Social", "Economic",
}

// EraCategory returns the broad period an era belongs to, or "Other" when
// the era is not in any group.
func EraCategory(era string) string {
	for category, eras := range EraCategories {
		for _, e := range eras {
			if e == era {
				return category
			}
		}
	}
	return "Other"
}

// FormatTimePeriod renders a signed year as a display period: negative
// years become "N BCE", the rest "N CE".
func FormatTimePeriod(year int64) string {
	if year < 0 {
		return fmt.Sprintf("%d BCE", -year)
	}
	return fmt.Sprintf("%d CE", year)
}

// TimePeriod returns the display period for a row: the era's conventional
// range when one is known, otherwise the formatted year.
func TimePeriod(era string, year int64) string {
	if r, ok := EraRanges[era]; ok {
		return r
	}
	return FormatTimePeriod(year)
}

var leadingNumber = regexp.MustCompile(`\d+`)

// TimelineYear converts a display period back to a signed year for
// chronological ordering: the first run of digits, negated when the
// period mentions BCE. Null when the period carries no digits.
func TimelineYear(period core.Value) core.Value {
	if period.IsNull() || period.Kind != core.KindText {
		return core.NullValue(core.KindInt)
	}
	digits := leadingNumber.FindString(period.Text)
	if digits == "" {
		return core.NullValue(core.KindInt)
	}
	v := core.TextValue(digits)
	year := v.AsInt()
	if strings.Contains(period.Text, "BCE") {
		year = -year
	}
	return core.IntValue(year)
}

// MajorEvents combines an event name and its significance into a single
// display string. Either side may be null.
func MajorEvents(event, significance core.Value) core.Value {
	switch {
	case !event.IsNull() && !significance.IsNull():
		return core.TextValue(fmt.Sprintf("**%s**: %s", event.AsText(), significance.AsText()))
	case !event.IsNull():
		return event
	case !significance.IsNull():
		return significance
	default:
		return core.TextValue("No event information available")
	}
}

// ThemeFlag reports whether a legacy narrative mentions a theme,
// case-insensitively, as a 0/1 indicator. Null narratives count as 0.
func ThemeFlag(legacy core.Value, theme string) core.Value {
	if legacy.IsNull() {
		return core.IntValue(0)
	}
	if strings.Contains(strings.ToLower(legacy.AsText()), strings.ToLower(theme)) {
		return core.IntValue(1)
	}
	return core.IntValue(0)
}
