package fundinsights

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultReportName is the name of a report whose statement has no readable month.
const DefaultReportName = "Portfolio Report"

// SavedReport is a named statement, as kept in the report collection.
//
// Its JSON form {"name": ..., "rawData": ...} is also an accepted input
// envelope, see [DecodeInput].
type SavedReport struct {
	Name    string `json:"name" validate:"required"`
	RawData string `json:"rawData" validate:"required"`
}

// MarshalJSON writes the report as an envelope, the name is omitted when empty.
func (r SavedReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", r.Name)
	w.Append("rawData", r.RawData)
	return w.MarshalJSON()
}

// DecodeInput reads user input that is either a raw statement or a JSON
// envelope {"name"?: string, "rawData": string}.
//
// Input starting with '{' is an envelope: it fails with a *FormatError if it
// is not valid JSON or has no "rawData" string. The name is left empty when
// there is none, or for a raw statement.
func DecodeInput(input string) (SavedReport, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "{") {
		return SavedReport{RawData: input}, nil
	}

	var jobj any
	if err := json.Unmarshal([]byte(input), &jobj); err != nil {
		return SavedReport{}, formatErrorf("invalid JSON: %w", err)
	}
	jraw, err := jsonpath.Get("$.rawData", jobj)
	raw, ok := jraw.(string)
	if err != nil || !ok || raw == "" {
		return SavedReport{}, formatErrorf("invalid JSON: JSON must contain a %q property.", "rawData")
	}

	var name string
	if jname, err := jsonpath.Get("$.name", jobj); err == nil {
		name, _ = jname.(string)
	}
	return SavedReport{Name: strings.TrimSpace(name), RawData: raw}, nil
}

// AutoReportName derives a report name from the first and last months of a
// statement, e.g. "Jan 2023 To Dec 2024".
//
// It returns [DefaultReportName] when there is no Month column or no line
// with a month.
func AutoReportName(rawData string) string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(rawData), "\n") {
		if l = strings.TrimSuffix(l, "\r"); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return DefaultReportName
	}

	monthIdx := -1
	for i, h := range strings.Split(lines[0], "\t") {
		if containsFold("month")(strings.TrimSpace(h)) {
			monthIdx = i
			break
		}
	}
	if monthIdx == -1 {
		return DefaultReportName
	}

	var months []string
	for _, l := range lines[1:] {
		cells := strings.Split(l, "\t")
		if len(cells) > monthIdx && strings.TrimSpace(cells[monthIdx]) != "" {
			months = append(months, strings.TrimSpace(cells[monthIdx]))
		}
	}
	if len(months) == 0 {
		return DefaultReportName
	}
	return months[0] + " To " + months[len(months)-1]
}
