package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/cyclegames/internal/classify"
	"github.com/katalvlaran/cyclegames/internal/cli"
	"github.com/katalvlaran/cyclegames/internal/ctxlog"
	"github.com/katalvlaran/cyclegames/listing"
)

// main is the entrypoint for the cyclegames application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, decides every requested position and prints the report
// to outW. Logs go to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.Settings.LogLevel, cfg.Settings.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Configuration resolved.", "jobs", len(cfg.Jobs), "workers", cfg.Settings.Workers)

	runner := classify.NewRunner(listing.Loader{},
		classify.WithWorkers(cfg.Settings.Workers),
		classify.WithResultsDir(cfg.Settings.ResultsDir),
		classify.WithPollInterval(cfg.Settings.PollInterval),
	)
	outcomes, err := runner.Run(ctx, cfg.Jobs)
	if len(outcomes) > 0 {
		if werr := classify.WriteReport(outW, outcomes); werr != nil {
			return &cli.ExitError{Code: 1, Message: werr.Error()}
		}
	}
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d positions failed", failed, len(outcomes))}
	}
	if len(outcomes) == 1 {
		fmt.Fprintln(outW, outcomes[0].Verdict())
	}

	return nil
}
