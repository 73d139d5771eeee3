package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"
)

// renderMarkdown renders md for the terminal, md is returned as is if it
// cannot be rendered.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		logrus.WithError(err).Debug("markdown renderer unavailable")
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.WithError(err).Debug("cannot render markdown")
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
