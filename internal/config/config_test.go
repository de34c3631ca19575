package config_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclegames/game"
	"github.com/katalvlaran/cyclegames/internal/config"
)

func TestParse_Full(t *testing.T) {
	src := `
settings {
  workers       = 3
  log_level     = "debug"
  log_format    = "json"
  results_dir   = "out"
  poll_interval = "5ms"
}

run "tri" {
  graph = "graphs/tri.txt"
  rules = ["mac"]
  start = range(0, 3)
  trace = true
}

run "big" {
  graph    = "/abs/big.txt"
  start    = concat([0], [7])
  parallel = true
}
`
	cfg, err := config.Parse([]byte(src), "test.hcl", "/base")
	require.NoError(t, err)

	want := &config.Config{
		Settings: config.Settings{
			Workers:      3,
			LogLevel:     "debug",
			LogFormat:    "json",
			ResultsDir:   filepath.Join("/base", "out"),
			PollInterval: 5 * time.Millisecond,
		},
		Runs: []config.Run{
			{
				Name:   "tri",
				Graph:  filepath.Join("/base", "graphs/tri.txt"),
				Rules:  []game.Rule{game.MAC},
				Starts: []int{0, 1, 2},
				Trace:  true,
			},
			{
				Name:     "big",
				Graph:    "/abs/big.txt",
				Rules:    []game.Rule{game.MAC, game.AAC},
				Starts:   []int{0, 7},
				Parallel: true,
			},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`run "a" { graph = "g.txt" }`), "test.hcl", "")
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), cfg.Settings)
	require.Len(t, cfg.Runs, 1)
	assert.Equal(t, "g.txt", cfg.Runs[0].Graph)
	assert.Empty(t, cfg.Runs[0].Starts)
	assert.False(t, cfg.Runs[0].Parallel)
}

func TestParse_NumCPU(t *testing.T) {
	cfg, err := config.Parse([]byte(`settings { workers = num_cpu }`), "test.hcl", "")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Settings.Workers)
	assert.Empty(t, cfg.Runs)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"zero workers", `settings { workers = 0 }`, config.ErrInvalid},
		{"bad level", `settings { log_level = "loud" }`, config.ErrInvalid},
		{"bad format", `settings { log_format = "xml" }`, config.ErrInvalid},
		{"bad interval", `settings { poll_interval = "soon" }`, config.ErrInvalid},
		{"negative interval", `settings { poll_interval = "-1ms" }`, config.ErrInvalid},
		{"duplicate run", `
run "a" { graph = "g" }
run "a" { graph = "h" }`, config.ErrInvalid},
		{"empty graph", `run "a" { graph = "" }`, config.ErrInvalid},
		{"unknown rule", `run "a" {
  graph = "g"
  rules = ["XYZ"]
}`, game.ErrUnknownRule},
		{"negative start", `run "a" {
  graph = "g"
  start = [-1]
}`, config.ErrInvalid},
		{"trace in parallel", `run "a" {
  graph    = "g"
  parallel = true
  trace    = true
}`, config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tc.src), "test.hcl", "")
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_SyntaxAndSchema(t *testing.T) {
	_, err := config.Parse([]byte(`run "a" {`), "broken.hcl", "")
	assert.ErrorContains(t, err, "broken.hcl")

	_, err = config.Parse([]byte(`run "a" { rules = ["MAC"] }`), "schema.hcl", "")
	assert.ErrorContains(t, err, "graph")

	_, err = config.Parse([]byte(`bogus = 1`), "schema.hcl", "")
	assert.Error(t, err)
}

func TestLoad_ResolvesAgainstFileDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`run "x" { graph = "x.txt" }`), 0o644))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Runs, 1)
	assert.Equal(t, filepath.Join(dir, "x.txt"), cfg.Runs[0].Graph)
	assert.Equal(t, filepath.Join(dir, "results"), cfg.Settings.ResultsDir)

	_, err = config.Load(context.Background(), filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)
}

func TestValidateLogSettings(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, config.ValidateLogLevel(lvl))
	}
	assert.ErrorIs(t, config.ValidateLogLevel("INFO"), config.ErrInvalid)
	assert.NoError(t, config.ValidateLogFormat("json"))
	assert.ErrorIs(t, config.ValidateLogFormat(""), config.ErrInvalid)
}
