package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/urfave/cli/v3"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	if err := logger.Initialize("error"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(NewRunner(RunnerOpts{}))
	if err := app.Run(ctx, os.Args); err != nil {
		logger.Log.Errorw("planner failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "planner",
		Usage:   "Plan trips against a gw-trip-planner server",
		Version: fmt.Sprintf("%s (commit %s, built %s)", buildVersion, buildCommit, buildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Base URL of the API server",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("PLANNER_SERVER"),
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "Bearer token returned by login",
				Sources: cli.EnvVars("PLANNER_TOKEN"),
			},
		},
		Before:   r.Setup,
		Commands: r.register(),
	}
}
