package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclegames/game"
	"github.com/katalvlaran/cyclegames/internal/classify"
	"github.com/katalvlaran/cyclegames/internal/cli"
)

func TestParse_OneOff(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-rule", "aac", "-start", "0, 3", "-workers", "2", "-log-format", "JSON", "g.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, []classify.Job{{
		Name:      "g.txt",
		GraphPath: "g.txt",
		Rules:     []game.Rule{game.AAC},
		Starts:    []int{0, 3},
	}}, cfg.Jobs)
	assert.Equal(t, 2, cfg.Settings.Workers)
	assert.Equal(t, "json", cfg.Settings.LogFormat)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "results", cfg.Settings.ResultsDir)
}

func TestParse_GraphFlagDefaults(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{"-graph", "g.txt", "-parallel"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Len(t, cfg.Jobs, 1)

	job := cfg.Jobs[0]
	assert.Equal(t, []game.Rule{game.MAC, game.AAC}, job.Rules)
	assert.Empty(t, job.Starts)
	assert.True(t, job.Parallel)
	assert.Equal(t, runtime.NumCPU(), cfg.Settings.Workers)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-log-level")
}

func TestParse_Help(t *testing.T) {
	_, exit, err := cli.Parse([]string{"-h"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad rule", []string{"-rule", "XYZ", "g.txt"}},
		{"bad start", []string{"-start", "1,a", "g.txt"}},
		{"negative start", []string{"-start", "-2", "g.txt"}},
		{"bad level", []string{"-log-level", "loud", "g.txt"}},
		{"bad format", []string{"-log-format", "xml", "g.txt"}},
		{"zero workers", []string{"-workers", "0", "g.txt"}},
		{"parallel trace", []string{"-parallel", "-trace", "g.txt"}},
		{"config and graph", []string{"-config", "a.hcl", "g.txt"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := cli.Parse(tc.args, &bytes.Buffer{})
			assert.Nil(t, cfg)
			assert.False(t, exit)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.hcl")
	src := `
settings {
  workers   = 3
  log_level = "debug"
}

run "tri" {
  graph = "tri.txt"
  rules = ["MAC"]
  start = [1]
  trace = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, exit, err := cli.Parse([]string{"-config", path, "-results", "elsewhere"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, []classify.Job{{
		Name:      "tri",
		GraphPath: filepath.Join(dir, "tri.txt"),
		Rules:     []game.Rule{game.MAC},
		Starts:    []int{1},
		Trace:     true,
	}}, cfg.Jobs)
	assert.Equal(t, 3, cfg.Settings.Workers)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.LogFormat)
	assert.Equal(t, "elsewhere", cfg.Settings.ResultsDir)
}

func TestParse_ConfigFileErrors(t *testing.T) {
	_, _, err := cli.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.hcl")}, &bytes.Buffer{})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}
