package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sokinpui/imgcheck/cli"
	"github.com/sokinpui/imgcheck/internal/checks"
	"github.com/sokinpui/imgcheck/internal/detect"
	"github.com/sokinpui/imgcheck/internal/fs"
	"github.com/sokinpui/imgcheck/internal/nvim"
	"github.com/sokinpui/imgcheck/internal/report"
	"github.com/sokinpui/imgcheck/internal/source"
	"github.com/sokinpui/imgcheck/internal/tui"
	"github.com/sokinpui/imgcheck/internal/ui"
	"github.com/sokinpui/imgcheck/model"
)

// App orchestrates the entire application logic.
type App struct {
	cfg      *cli.Config
	resolver *fs.PathResolver
	stdout   io.Writer
	color    bool

	clipboard source.Sink
	pager     func(title, content string) error
	opener    func(paths []string) (opened, failed []string, err error)
	prober    *detect.Prober
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App writing its report to stdout.
func New(cfg *cli.Config, stdout io.Writer) (*App, error) {
	resolver, err := fs.NewPathResolver(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	color := !cfg.NoColor
	if f, ok := stdout.(*os.File); !ok || !ui.ColorEnabled(f) {
		color = false
	}

	return &App{
		cfg:       cfg,
		resolver:  resolver,
		stdout:    stdout,
		color:     color,
		clipboard: source.NewClipboard(),
		pager:     tui.Run,
		opener:    openInNvim,
		prober:    detect.New(stdout),
	}, nil
}

// Check runs the file checks rooted at baseDir without any side effects.
func Check(baseDir string) (model.Report, error) {
	resolver, err := fs.NewPathResolver(baseDir)
	if err != nil {
		return model.Report{}, err
	}
	return checks.Evaluate(resolver, checks.Targets)
}

// Execute runs the mode selected by the flags and returns the exit code.
func (a *App) Execute(ctx context.Context) (code int, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			code = 1
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	if a.cfg.Detect {
		return a.prober.Summarize(a.prober.Probe(ctx)), nil
	}
	return a.runChecks()
}

func (a *App) runChecks() (int, error) {
	rep, err := checks.Evaluate(a.resolver, checks.Targets)
	if err != nil {
		return 1, err
	}

	if a.cfg.View {
		if err := a.pager("imgcheck", report.Text(rep)); err != nil {
			return 1, err
		}
	} else if err := report.Render(a.stdout, rep, a.cfg.Format, a.color); err != nil {
		return 1, fmt.Errorf("failed to write report: %w", err)
	}

	if a.cfg.Copy {
		a.copyReport(rep)
	}
	if a.cfg.Open {
		a.openIncomplete(rep)
	}

	if a.cfg.Strict && !rep.AllPassed() {
		return 1, nil
	}
	return 0, nil
}

// copyReport copies the report in the selected format. Failure is reported
// but does not change the exit code.
func (a *App) copyReport(rep model.Report) {
	var content string
	switch a.cfg.Format {
	case report.FormatMarkdown:
		content = report.Markdown(rep)
	case report.FormatHTML:
		html, err := report.HTML(rep)
		if err != nil {
			ui.Error("%v", err)
			return
		}
		content = html
	default:
		content = report.Text(rep)
	}

	if err := a.clipboard.Write(content); err != nil {
		ui.Warning("Could not copy report: %v", err)
		return
	}
	ui.Success("Report copied to clipboard.")
}

func (a *App) openIncomplete(rep model.Report) {
	paths := rep.Incomplete()
	if len(paths) == 0 {
		ui.Info("No incomplete files to open.")
		return
	}

	opened, failed, err := a.opener(paths)
	if err != nil {
		ui.Warning("%v", err)
		return
	}
	ui.Header("--- Neovim ---")
	if len(opened) > 0 {
		ui.Success("Opened %d file(s) in Neovim:", len(opened))
		for _, p := range opened {
			ui.Path("- %s", p)
		}
	}
	if len(failed) > 0 {
		ui.Error("Failed to open %d file(s):", len(failed))
		for _, p := range failed {
			ui.Path("- %s", p)
		}
	}
}

func openInNvim(paths []string) ([]string, []string, error) {
	manager, err := nvim.New()
	if err != nil {
		return nil, nil, err
	}
	defer manager.Close()

	opened, failed := manager.OpenFiles(paths)
	return opened, failed, nil
}
