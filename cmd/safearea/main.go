// Package main provides the safearea CLI.
//
// Usage:
//
//	safearea resolve [flags]     Map a design canvas onto a display
//	safearea compute [flags]     Print or export the safe-area rectangles
//	safearea check [flags]       Check anchored elements against the safe area
//	safearea preview [flags]     Live preview driven by the terminal size
//	safearea serve [flags]       Serve resolve and snapshot over HTTP
//	safearea version             Print version information
//
// Examples:
//
//	safearea compute --display 1170x2532 --insets 90,0,34,0
//	safearea compute -c safearea.toml -o json
//	safearea check --elements hud.yaml --rotate
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-safearea/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cli.SetVersion(version, commit, date)
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
