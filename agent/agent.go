// Package agent is an AI assistant commenting a portfolio analysis, through
// Gemini models.
//
// A facilitator model leads the conversation and consults experts: an
// analyst that reads the analysis and an economist grounded in recent news.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert

	// Markdown renders the replies for the terminal, when set.
	Markdown func(string) string

	asker Asker
}

// New creates an Agent reading user input from r and writing to w, with a
// facilitator using model to consult the experts.
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	f := newFacilitator(model, experts...)
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: f,
		asker:       f,
	}
}

// Start creates the chats of every expert and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive session, the agent must be started.
//
// The prompts are asked first as if the user typed them. The session ends
// when the user types "bye" or at the end of the input.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to fi assist, your portfolio analyst. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.asker.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		reply := text(content)
		if a.Markdown != nil {
			reply = a.Markdown(reply)
		}
		fmt.Fprintln(a.w, reply)
	}
}
