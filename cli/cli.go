package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/imgcheck/internal/report"
)

// Config holds all the command-line flag values.
type Config struct {
	Format  report.Format
	Detect  bool
	Copy    bool
	View    bool
	Open    bool
	Strict  bool
	NoColor bool

	// BaseDir overrides the directory the target paths are resolved against.
	// It is not exposed as a flag; the executable's directory is used when empty.
	BaseDir string
}

// ParseFlags parses os.Args using pflag.
func ParseFlags() (*Config, error) {
	return Parse(os.Args[1:], os.Stdout)
}

// Parse defines and parses command-line flags from args.
func Parse(args []string, usageOut io.Writer) (*Config, error) {
	cfg := &Config{}
	var format string

	fs := pflag.NewFlagSet("imgcheck", pflag.ContinueOnError)
	fs.StringVarP(&format, "format", "f", string(report.FormatText), "Report format: text, markdown or html.")
	fs.BoolVarP(&cfg.Detect, "detect", "d", false, "Probe localhost for a running Automatic1111 instead of checking files.")
	fs.BoolVarP(&cfg.Copy, "copy", "c", false, "Copy the report in the selected format to the clipboard.")
	fs.BoolVarP(&cfg.View, "view", "v", false, "Show the report in a scrollable pager instead of printing it.")
	fs.BoolVarP(&cfg.Open, "open", "o", false, "Open files with failing checks in the running Neovim.")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit with status 1 when a file is missing or a check fails.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable coloured output.")

	fs.SetOutput(usageOut)
	fs.Usage = func() {
		fmt.Fprintln(usageOut, "Usage: imgcheck [flags]")
		fmt.Fprintln(usageOut, "\nVerify that image generation is enabled by default in the chat components.")
		fmt.Fprintln(usageOut, "\nExample: imgcheck --format markdown --copy")
		fmt.Fprintln(usageOut, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}
	cfg.Format = f

	// Validate mutually exclusive flags
	if cfg.Detect && (cfg.Copy || cfg.View || cfg.Open || cfg.Strict) {
		return nil, fmt.Errorf("error: --detect cannot be combined with report flags")
	}
	if cfg.View && cfg.Format != report.FormatText {
		return nil, fmt.Errorf("error: --view only supports the text format")
	}

	return cfg, nil
}
