package agent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/renderer"
	"google.golang.org/genai"
)

// echo replies with the question, upper cased.
type echo struct{ asked []string }

func (e *echo) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	e.asked = append(e.asked, parts[0].Text)
	return genai.NewContentFromText(strings.ToUpper(parts[0].Text), genai.RoleModel), nil
}

func newTestAgent(input string) (*Agent, *echo, *bytes.Buffer) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader(input), DefaultModel)
	e := &echo{}
	a.asker = e
	return a, e, &out
}

func TestAgentRun(t *testing.T) {
	a, e, out := newTestAgent("how was 2023?\n\n  bye  \nnever asked\n")

	if err := a.Run(context.Background(), "first", "  "); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got, want := strings.Join(e.asked, "|"), "first|how was 2023?"; got != want {
		t.Errorf("asked = %q, want %q", got, want)
	}
	for _, want := range []string{"assist> first\nFIRST\n", "HOW WAS 2023?\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestAgentRunEOF(t *testing.T) {
	a, e, out := newTestAgent("last line without newline")
	a.Markdown = func(s string) string { return "**" + s + "**" }

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(e.asked) != 1 {
		t.Errorf("asked %d questions, want 1", len(e.asked))
	}
	if !strings.Contains(out.String(), "**LAST LINE WITHOUT NEWLINE**") {
		t.Errorf("reply was not rendered:\n%s", out)
	}
}

type failing struct{}

func (failing) Ask(context.Context, ...*genai.Part) (*genai.Content, error) {
	return nil, errors.New("quota exceeded")
}

func TestAgentRunError(t *testing.T) {
	a, _, _ := newTestAgent("hello\n")
	a.asker = failing{}
	if err := a.Run(context.Background()); err == nil || err.Error() != "quota exceeded" {
		t.Errorf("Run() error = %v, want quota exceeded", err)
	}
}

func TestExpertNotStarted(t *testing.T) {
	e := NewEconomist(DefaultModel)
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hi"}); err == nil {
		t.Errorf("Ask() on a not started expert expected an error")
	}
}

func TestAnalystLibrary(t *testing.T) {
	a, err := fundinsights.Analyze("Month\tBeginning balance\tPurchases & Withdrawals\tMarket Gain/Loss\tIncome returns\tFees\tEnding balance\n" +
		"Jan 2023\t1000\t100\t50\t10\t-5\t1155\n" +
		"Feb 2023\t1155\t0\t20\t5\t-5\t1175")
	if err != nil {
		t.Fatalf("Analyze() unexpected error: %v", err)
	}
	analyst := NewAnalyst(DefaultModel, a, renderer.Options{})

	decls := analyst.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Summary" || decls[1].Name != "Year" {
		t.Fatalf("unexpected declarations: %v", decls)
	}

	tests := []struct {
		call    *genai.FunctionCall
		key     string
		contain string
	}{
		{&genai.FunctionCall{ID: "1", Name: "Summary"}, "output", "| 2023* | £1,000.00 |"},
		{&genai.FunctionCall{ID: "2", Name: "Year", Args: map[string]any{"year": "2023*"}}, "output", "| Feb 2023 |"},
		{&genai.FunctionCall{ID: "3", Name: "Year", Args: map[string]any{"year": "1999"}}, "error", "available years are 2023"},
		{&genai.FunctionCall{ID: "4", Name: "Year", Args: map[string]any{"year": 2023}}, "error", "not a string"},
		{&genai.FunctionCall{ID: "5", Name: "Forecast"}, "error", "unknown function Forecast"},
	}
	for _, tt := range tests {
		resp := analyst.Library(context.Background(), tt.call)
		if resp.ID != tt.call.ID || resp.Name != tt.call.Name {
			t.Errorf("%s: response is for %s/%s", tt.call.Name, resp.ID, resp.Name)
		}
		got, _ := resp.Response[tt.key].(string)
		if !strings.Contains(got, tt.contain) {
			t.Errorf("%s(%v): %s = %q, want it to contain %q", tt.call.Name, tt.call.Args, tt.key, got, tt.contain)
		}
	}
}

func TestFacilitatorDeclaresExperts(t *testing.T) {
	a := New(&bytes.Buffer{}, strings.NewReader(""), "m", NewEconomist("m"))
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 1 || decls[0].Name != "Economist" {
		t.Errorf("facilitator declarations = %v, want the Economist", decls)
	}
	resp := a.Facilitator.Library(context.Background(), &genai.FunctionCall{Name: "Economist", Args: map[string]any{"question": 1}})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("calling an expert with an invalid question should fail, got %v", resp.Response)
	}
}
