// Package cli turns command-line arguments into a batch of classify jobs.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/cyclegames/game"
	"github.com/katalvlaran/cyclegames/internal/classify"
	"github.com/katalvlaran/cyclegames/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError builds the exit-code-2 error for bad arguments.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config is everything a run needs after argument parsing.
type Config struct {
	Settings config.Settings
	Jobs     []classify.Job
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cyclegames", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cyclegames - decide Make-A-Cycle and Avoid-A-Cycle games on graphs.

Usage:
  cyclegames [options] [GRAPH_PATH]
  cyclegames -config runs.hcl

Arguments:
  GRAPH_PATH
    Path to an Adjacency_Listing file.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL batch file. Mutually exclusive with -graph.")
	graphFlag := flagSet.String("graph", "", "Path to an Adjacency_Listing graph file.")
	ruleFlag := flagSet.String("rule", "both", "Game to play. Options: 'MAC', 'AAC' or 'both'.")
	startFlag := flagSet.String("start", "", "Comma-separated start nodes. Empty means every node.")
	parallelFlag := flagSet.Bool("parallel", false, "Split each root across a worker pool.")
	traceFlag := flagSet.Bool("trace", false, "Write the game tree of each position to the results directory.")
	resultsFlag := flagSet.String("results", "results", "Directory for trace files.")
	workersFlag := flagSet.Int("workers", runtime.NumCPU(), "Number of concurrent search workers.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	graphPath := *graphFlag
	if graphPath == "" && flagSet.NArg() > 0 {
		graphPath = flagSet.Arg(0)
	}
	if *configFlag != "" && graphPath != "" {
		return nil, false, usageError("-config and a graph path are mutually exclusive")
	}
	if *configFlag == "" && graphPath == "" {
		slog.Debug("No graph or config provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if err := config.ValidateLogLevel(logLevel); err != nil {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	logFormat := strings.ToLower(*logFormatFlag)
	if err := config.ValidateLogFormat(logFormat); err != nil {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	if *workersFlag < 1 {
		return nil, false, usageError("invalid workers: must be at least 1")
	}

	// 1. Batch file
	var cfg *Config
	if *configFlag != "" {
		fileCfg, err := config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: err.Error()}
		}
		cfg = fromFile(fileCfg)
	} else {
		// 2. One-off run from flags
		rules, err := parseRules(*ruleFlag)
		if err != nil {
			return nil, false, usageError("invalid rule: %v", err)
		}
		starts, err := parseStarts(*startFlag)
		if err != nil {
			return nil, false, usageError("invalid start: %v", err)
		}
		if *parallelFlag && *traceFlag {
			return nil, false, usageError("-parallel and -trace are mutually exclusive")
		}
		cfg = &Config{
			Settings: config.Defaults(),
			Jobs: []classify.Job{{
				Name:      graphPath,
				GraphPath: graphPath,
				Rules:     rules,
				Starts:    starts,
				Parallel:  *parallelFlag,
				Trace:     *traceFlag,
			}},
		}
		cfg.Settings.Workers = *workersFlag
		cfg.Settings.ResultsDir = *resultsFlag
	}

	// 3. Explicit flags win over the batch file
	if *configFlag == "" || set["log-level"] {
		cfg.Settings.LogLevel = logLevel
	}
	if *configFlag == "" || set["log-format"] {
		cfg.Settings.LogFormat = logFormat
	}
	if set["workers"] {
		cfg.Settings.Workers = *workersFlag
	}
	if set["results"] {
		cfg.Settings.ResultsDir = *resultsFlag
	}

	slog.Debug("CLI parser finished successfully.", "jobs", len(cfg.Jobs))
	return cfg, false, nil
}

// fromFile maps decoded runs onto classify jobs.
func fromFile(fc *config.Config) *Config {
	cfg := &Config{Settings: fc.Settings}
	for _, r := range fc.Runs {
		cfg.Jobs = append(cfg.Jobs, classify.Job{
			Name:      r.Name,
			GraphPath: r.Graph,
			Rules:     r.Rules,
			Starts:    r.Starts,
			Parallel:  r.Parallel,
			Trace:     r.Trace,
		})
	}

	return cfg
}

// parseRules accepts MAC, AAC or both.
func parseRules(s string) ([]game.Rule, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []game.Rule{game.MAC, game.AAC}, nil
	}
	rule, err := game.ParseRule(s)
	if err != nil {
		return nil, err
	}

	return []game.Rule{rule}, nil
}

// parseStarts parses a comma-separated list of node indices.
func parseStarts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var starts []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%q is not a node index", field)
		}
		starts = append(starts, n)
	}

	return starts, nil
}
