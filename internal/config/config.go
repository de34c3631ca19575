// Package config loads batch-run configuration from HCL files.
//
// A file holds at most one settings block and any number of run blocks:
//
//	settings {
//	  workers       = num_cpu
//	  log_level     = "info"
//	  log_format    = "text"
//	  results_dir   = "results"
//	  poll_interval = "1ms"
//	}
//
//	run "petersen" {
//	  graph    = "graphs/petersen.txt"
//	  rules    = ["MAC", "AAC"]
//	  start    = range(0, 10)
//	  parallel = true
//	  trace    = false
//	}
//
// Expressions see the variable num_cpu and the functions range, concat and
// max. Relative graph and results paths resolve against the file's directory.
package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/cyclegames/game"
	"github.com/katalvlaran/cyclegames/internal/ctxlog"
)

// ErrInvalid indicates a configuration that decodes but makes no sense.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the validated content of one configuration file.
type Config struct {
	Settings Settings
	Runs     []Run
}

// Settings are process-wide knobs.
type Settings struct {
	Workers      int
	LogLevel     string
	LogFormat    string
	ResultsDir   string
	PollInterval time.Duration
}

// Run describes one batch of positions to classify.
type Run struct {
	Name     string
	Graph    string
	Rules    []game.Rule
	Starts   []int // empty means every node
	Parallel bool
	Trace    bool
}

// Defaults returns the settings used when a file omits them.
func Defaults() Settings {
	return Settings{
		Workers:      runtime.NumCPU(),
		LogLevel:     "info",
		LogFormat:    "text",
		ResultsDir:   "results",
		PollInterval: game.DefaultPollInterval,
	}
}

// hclFile mirrors the file layout for gohcl.
type hclFile struct {
	Settings *hclSettings `hcl:"settings,block"`
	Runs     []*hclRun    `hcl:"run,block"`
}

type hclSettings struct {
	Workers      *int    `hcl:"workers,optional"`
	LogLevel     *string `hcl:"log_level,optional"`
	LogFormat    *string `hcl:"log_format,optional"`
	ResultsDir   *string `hcl:"results_dir,optional"`
	PollInterval *string `hcl:"poll_interval,optional"`
}

type hclRun struct {
	Name     string   `hcl:"name,label"`
	Graph    string   `hcl:"graph"`
	Rules    []string `hcl:"rules,optional"`
	Start    []int    `hcl:"start,optional"`
	Parallel *bool    `hcl:"parallel,optional"`
	Trace    *bool    `hcl:"trace,optional"`
}

// evalContext exposes num_cpu and a few list helpers to expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"num_cpu": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
		Functions: map[string]function.Function{
			"range":  stdlib.RangeFunc,
			"concat": stdlib.ConcatFunc,
			"max":    stdlib.MaxFunc,
		},
	}
}

// Load parses and validates the HCL file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding config file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	cfg, err := decode(file.Body, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Decoded config file.", "path", path, "runs", len(cfg.Runs))

	return cfg, nil
}

// Parse decodes HCL source held in memory; filename is used in diagnostics
// and relative paths resolve against baseDir.
func Parse(src []byte, filename, baseDir string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}

	return decode(file.Body, baseDir)
}

// decode maps the HCL body onto Config and validates it.
func decode(body hcl.Body, baseDir string) (*Config, error) {
	// 1. Decode
	var raw hclFile
	if diags := gohcl.DecodeBody(body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	// 2. Settings over defaults
	cfg := &Config{Settings: Defaults()}
	if s := raw.Settings; s != nil {
		if err := applySettings(&cfg.Settings, s); err != nil {
			return nil, err
		}
	}
	cfg.Settings.ResultsDir = resolve(baseDir, cfg.Settings.ResultsDir)

	// 3. Runs
	seen := make(map[string]bool, len(raw.Runs))
	for _, r := range raw.Runs {
		if seen[r.Name] {
			return nil, fmt.Errorf("run %q declared twice: %w", r.Name, ErrInvalid)
		}
		seen[r.Name] = true

		run, err := convertRun(r, baseDir)
		if err != nil {
			return nil, err
		}
		cfg.Runs = append(cfg.Runs, run)
	}

	return cfg, nil
}

func applySettings(dst *Settings, s *hclSettings) error {
	if s.Workers != nil {
		if *s.Workers < 1 {
			return fmt.Errorf("settings.workers=%d: %w", *s.Workers, ErrInvalid)
		}
		dst.Workers = *s.Workers
	}
	if s.LogLevel != nil {
		if err := ValidateLogLevel(*s.LogLevel); err != nil {
			return fmt.Errorf("settings.log_level: %w", err)
		}
		dst.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil {
		if err := ValidateLogFormat(*s.LogFormat); err != nil {
			return fmt.Errorf("settings.log_format: %w", err)
		}
		dst.LogFormat = *s.LogFormat
	}
	if s.ResultsDir != nil {
		dst.ResultsDir = *s.ResultsDir
	}
	if s.PollInterval != nil {
		d, err := time.ParseDuration(*s.PollInterval)
		if err != nil || d <= 0 {
			return fmt.Errorf("settings.poll_interval=%q: %w", *s.PollInterval, ErrInvalid)
		}
		dst.PollInterval = d
	}

	return nil
}

func convertRun(r *hclRun, baseDir string) (Run, error) {
	run := Run{Name: r.Name, Graph: resolve(baseDir, r.Graph), Starts: r.Start}
	if r.Graph == "" {
		return Run{}, fmt.Errorf("run %q: graph is empty: %w", r.Name, ErrInvalid)
	}

	// rules default to both games
	names := r.Rules
	if len(names) == 0 {
		names = []string{"MAC", "AAC"}
	}
	for _, name := range names {
		rule, err := game.ParseRule(name)
		if err != nil {
			return Run{}, fmt.Errorf("run %q: %w", r.Name, err)
		}
		run.Rules = append(run.Rules, rule)
	}

	for _, s := range r.Start {
		if s < 0 {
			return Run{}, fmt.Errorf("run %q: start %d: %w", r.Name, s, ErrInvalid)
		}
	}
	if r.Parallel != nil {
		run.Parallel = *r.Parallel
	}
	if r.Trace != nil {
		run.Trace = *r.Trace
	}
	if run.Parallel && run.Trace {
		return Run{}, fmt.Errorf("run %q: trace requires a sequential run: %w", r.Name, ErrInvalid)
	}

	return run, nil
}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(s string) error {
	switch s {
	case "debug", "info", "warn", "error":
		return nil
	}

	return fmt.Errorf("log level %q: %w", s, ErrInvalid)
}

// ValidateLogFormat accepts text and json.
func ValidateLogFormat(s string) error {
	switch s {
	case "text", "json":
		return nil
	}

	return fmt.Errorf("log format %q: %w", s, ErrInvalid)
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}

	return filepath.Join(baseDir, p)
}
