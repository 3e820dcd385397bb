package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)
	stdoutRenderer = lipgloss.NewRenderer(os.Stdout)

	HeaderStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	InfoStyle    = stderrRenderer.NewStyle().Foreground(lipgloss.Color("39"))
	SuccessStyle = stderrRenderer.NewStyle().Foreground(lipgloss.Color("78"))
	WarningStyle = stderrRenderer.NewStyle().Foreground(lipgloss.Color("214"))
	ErrorStyle   = stderrRenderer.NewStyle().Foreground(lipgloss.Color("197"))
	PathStyle    = stderrRenderer.NewStyle().Foreground(lipgloss.Color("220"))

	passStyle = stdoutRenderer.NewStyle().Foreground(lipgloss.Color("78"))
	failStyle = stdoutRenderer.NewStyle().Foreground(lipgloss.Color("197"))
)

// Out receives all status output. Report content never goes here.
var Out io.Writer = os.Stderr

var colorEnabled = true

// SetColor turns styling of the stderr status helpers on or off.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether f is a terminal that should get colour.
// NO_COLOR is honoured.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

func emit(style lipgloss.Style, format string, a ...interface{}) {
	fmt.Fprintln(Out, paint(style, fmt.Sprintf(format, a...)))
}

func Header(format string, a ...interface{}) {
	emit(HeaderStyle, format, a...)
}

func Info(format string, a ...interface{}) {
	emit(InfoStyle, format, a...)
}

func Success(format string, a ...interface{}) {
	emit(SuccessStyle, format, a...)
}

func Warning(format string, a ...interface{}) {
	emit(WarningStyle, format, a...)
}

func Error(format string, a ...interface{}) {
	emit(ErrorStyle, format, a...)
}

func Path(format string, a ...interface{}) {
	emit(PathStyle, "  "+format, a...)
}

// Verdict renders a YES/NO verdict for stdout. Styling depends only on
// color, which the caller derives from stdout.
func Verdict(passed, color bool) string {
	text, style := "NO", failStyle
	if passed {
		text, style = "YES", passStyle
	}
	if !color {
		return text
	}
	return style.Render(text)
}
