package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/sokinpui/imgcheck/internal/ui"
	"github.com/sokinpui/imgcheck/model"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

const title = "Testing Image Generation Default Settings"

var summaryLines = []string{
	"The image generation option should now be enabled by default in the chat screen.",
	"Users will see the image generation button automatically when:",
	"1. Starting a new chat",
	"2. The backend has image generation enabled",
	"3. The user has proper permissions",
}

var instructionLines = []string{
	"1. Start Open WebUI",
	"2. Go to a chat",
	`3. Look for the "Image" button in the input area`,
	"4. It should be visible and enabled by default",
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format '%s' (want text, markdown or html)", s)
	}
}

// Render writes r to w in the given format. Verdicts are styled only when
// color is true and the format is text.
func Render(w io.Writer, r model.Report, format Format, color bool) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		html, err := HTML(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	default:
		_, err := io.WriteString(w, text(r, color))
		return err
	}
}

// Text renders the plain console report. The output depends only on r.
func Text(r model.Report) string {
	return text(r, false)
}

func text(r model.Report, color bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧪 %s\n", title)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, f := range r.Files {
		if !f.Found {
			fmt.Fprintf(&b, "❌ %s not found\n", f.Name)
			continue
		}
		fmt.Fprintf(&b, "✅ %s:\n", f.Name)
		for _, res := range f.Results {
			fmt.Fprintf(&b, "   - %s: %s\n", res.Label, ui.Verdict(res.Passed, color))
		}
	}

	b.WriteString("\n📋 Summary:\n")
	for _, line := range summaryLines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n🎯 To test:\n")
	for _, line := range instructionLines {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Markdown renders r as a Markdown document.
func Markdown(r model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, f := range r.Files {
		fmt.Fprintf(&b, "## %s\n\n", f.Name)
		if !f.Found {
			fmt.Fprintf(&b, "Not found at `%s`.\n\n", f.Path)
			continue
		}
		for _, res := range f.Results {
			mark := "NO"
			if res.Passed {
				mark = "YES"
			}
			fmt.Fprintf(&b, "- %s: **%s** (`%s`)\n", res.Label, mark, res.Needle)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(summaryLines[0] + "\n")
	b.WriteString(summaryLines[1] + "\n\n")
	for _, line := range summaryLines[2:] {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n## To test\n\n")
	for _, line := range instructionLines {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// HTML renders the Markdown form of r through goldmark.
func HTML(r model.Report) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}
