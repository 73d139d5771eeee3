package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

func instruction(s string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: s}}}
}

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of answering the user's request.

			The user has analysed the monthly statement of an investment portfolio: yearly
			contributions, market gains, income, fees and return percentages.
			Learn about the expert's skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Figures must come from the Analyst, never make them up. Years marked with a '*'
			are partial years, do not compare them with full years without saying so.
			Reply in concise markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert that reads the analysis a.
func NewAnalyst(model string, a *fundinsights.Analysis, opts renderer.Options) *Expert {
	lib := []Function{summaryFunc(a, opts), yearFunc(a, opts)}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It has the user's portfolio analysis: the yearly rollups,
		the overall return rate and the monthly statement lines. Ask the Analyst for any figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
				You are a portfolio analyst in charge of the user's statement analysis.
				Use the Tools to read the summary and the monthly breakdown of each year.
				The return percentage of a year is its total returns (market gains, income and fees)
				over its start balance plus contributions. "NaN%" means the base was zero.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// NewEconomist returns the expert grounded in recent market news.
func NewEconomist(model string) *Expert {
	return &Expert{
		Name: "Economist",
		Description: `This is an economist, aware of the markets, the interest rates and the latest news.
		Ask the Economist to explain a good or bad year with the market context.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an economist. You leverage Google Search to ground your assertions about
			markets, indices and economic events, and you relate them to the user's request.
			`),
		},
	}
}

func summaryFunc(a *fundinsights.Analysis, opts renderer.Options) *Func {
	const name = "Summary"
	opts.SkipCharts = true
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Summary returns the overall figures of the portfolio and its performance year by year.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown document with the summary and the yearly performance table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.AnalysisMarkdown(a, opts))
		},
	}
}

func yearFunc(a *fundinsights.Analysis, opts renderer.Options) *Func {
	const name = "Year"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Year returns the monthly breakdown of one year of the statement.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeString,
						Description: "The year, e.g. 2023. Available years: " + strings.Join(a.Years(), ", "),
					},
				},
				Required: []string{"year"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the months of the year with their totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, ok := args["year"].(string)
			if !ok {
				return errorResponse(id, name, fmt.Errorf("argument 'year' is not a string as expected but %T", args["year"]))
			}
			y, exists := a.Rollups[strings.TrimSuffix(strings.TrimSpace(year), "*")]
			if !exists {
				return errorResponse(id, name, fmt.Errorf("unknown year %q, available years are %s", year, strings.Join(a.Years(), ", ")))
			}
			return outputResponse(id, name, renderer.YearMarkdown(y, opts))
		},
	}
}
