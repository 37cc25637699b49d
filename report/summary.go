// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Summary accumulates a Markdown description of one analysis.
type Summary struct {
	b strings.Builder
}

// NewSummary starts a summary with a top-level title.
func NewSummary(title string) *Summary {
	s := &Summary{}
	fmt.Fprintf(&s.b, "# %s\n\n", title)

	return s
}

// Section starts a second-level heading.
func (s *Summary) Section(title string) *Summary {
	fmt.Fprintf(&s.b, "## %s\n\n", title)
	return s
}

// Fact appends a "**name**: value" line.
func (s *Summary) Fact(name string, value any) *Summary {
	fmt.Fprintf(&s.b, "- **%s**: %v\n", name, value)
	return s
}

// Text appends a paragraph.
func (s *Summary) Text(format string, args ...any) *Summary {
	fmt.Fprintf(&s.b, "\n"+format+"\n\n", args...)
	return s
}

// Table appends a GitHub-flavoured table.
func (s *Summary) Table(header []string, rows [][]string) *Summary {
	s.b.WriteString("\n| " + strings.Join(header, " | ") + " |\n|")
	for range header {
		s.b.WriteString(" --- |")
	}
	s.b.WriteString("\n")
	for _, r := range rows {
		s.b.WriteString("| " + strings.Join(escapeCells(r), " | ") + " |\n")
	}
	s.b.WriteString("\n")

	return s
}

// Markdown returns the accumulated source.
func (s *Summary) Markdown() string { return s.b.String() }

// HTML renders the summary with goldmark and GFM tables.
func (s *Summary) HTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(s.b.String()), &buf); err != nil {
		return nil, errors.Wrap(err, "report: render summary")
	}

	return buf.Bytes(), nil
}

func escapeCells(r []string) []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}

	return out
}
