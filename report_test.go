package fundinsights

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SavedReport
	}{
		{"raw statement", "  " + sample + "\n", SavedReport{RawData: sample}},
		{"envelope", `{"name":"  ISA  ","rawData":"a\tb"}`, SavedReport{Name: "ISA", RawData: "a\tb"}},
		{"envelope without name", `{"rawData":"x"}`, SavedReport{RawData: "x"}},
		{"non string name", `{"name":12,"rawData":"x"}`, SavedReport{RawData: "x"}},
		{"extra properties", `{"rawData":"x","owner":"me"}`, SavedReport{RawData: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInput(tt.input)
			if err != nil {
				t.Fatalf("DecodeInput() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeInputErrors(t *testing.T) {
	const missing = `invalid JSON: JSON must contain a "rawData" property.`
	tests := []struct {
		name  string
		input string
		want  string // empty when only the prefix matters
	}{
		{"malformed", `{"rawData": `, ""},
		{"no rawData", `{"name":"x"}`, missing},
		{"empty rawData", `{"rawData":""}`, missing},
		{"number rawData", `{"rawData":5}`, missing},
		{"array rawData", `{"rawData":["a"]}`, missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInput(tt.input)
			if err == nil {
				t.Fatalf("DecodeInput() expected an error")
			}
			if !IsFormatError(err) {
				t.Errorf("DecodeInput() error %T is not a format error", err)
			}
			if tt.want != "" && err.Error() != tt.want {
				t.Errorf("DecodeInput() error = %q, want %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "invalid JSON: ") {
				t.Errorf("DecodeInput() error = %q, want an invalid JSON error", err)
			}
		})
	}
}

func TestSavedReportMarshalJSON(t *testing.T) {
	tests := []struct {
		report SavedReport
		want   string
	}{
		{SavedReport{Name: "ISA", RawData: "a\tb"}, `{"name":"ISA","rawData":"a\tb"}`},
		{SavedReport{RawData: "x"}, `{"rawData":"x"}`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.report)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%+v) = %s, want %s", tt.report, got, tt.want)
		}
		back, err := DecodeInput(string(got))
		if err != nil {
			t.Fatalf("DecodeInput(%s) unexpected error: %v", got, err)
		}
		if back != tt.report {
			t.Errorf("DecodeInput(%s) = %+v, want %+v", got, back, tt.report)
		}
	}
}

func TestAutoReportName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sample", sample, "Jan 2023 To Feb 2023"},
		{"single month", statement(row("Jul 2021", 1, 1, 1, 1, 1, 1)), "Jul 2021 To Jul 2021"},
		{"input order", statement(row("Mar 2024", 1, 1, 1, 1, 1, 1), row("Jan 2023", 1, 1, 1, 1, 1, 1)), "Mar 2024 To Jan 2023"},
		{"no month column", "Period\tValue\nJan 2023\t1", DefaultReportName},
		{"header only", header, DefaultReportName},
		{"empty", "", DefaultReportName},
		{"blank months", statement("\t1\t1", " \t2"), DefaultReportName},
		{"short rows are fine", "Value\tMonth (UK)\n1\tApr 2020\n2", "Apr 2020 To Apr 2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoReportName(tt.raw); got != tt.want {
				t.Errorf("AutoReportName() = %q, want %q", got, tt.want)
			}
		})
	}
}
