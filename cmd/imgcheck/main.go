package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/imgcheck/cli"
	"github.com/sokinpui/imgcheck/internal/ui"
	"github.com/sokinpui/imgcheck/verify"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ui.SetColor(!cfg.NoColor && ui.ColorEnabled(os.Stderr))

	app, err := verify.New(cfg, os.Stdout)
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		os.Exit(1)
	}

	code, err := app.Execute(context.Background())
	if err != nil {
		ui.Error("Error: %v", err)
		var detailed *verify.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		os.Exit(1)
	}
	os.Exit(code)
}
