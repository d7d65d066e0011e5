package di

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fractal-rmo/docaudit/pkg/config"
	"github.com/fractal-rmo/docaudit/pkg/controller/thought"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func Test_buildThoughtParam(t *testing.T) { //nolint:funlen
	t.Parallel()
	cfg := &config.Thoughts{
		LogFile:    "mcp.log",
		OutputFile: "last_25_thoughts.md",
		Count:      25,
	}
	data := []struct {
		name  string
		args  []string
		exp   *thought.Param
		isErr bool
	}{
		{
			name: "no arguments",
			exp: &thought.Param{
				LogFile:    "mcp.log",
				OutputFile: "last_25_thoughts.md",
				Count:      25,
			},
		},
		{
			name: "log file",
			args: []string{"server.log"},
			exp: &thought.Param{
				LogFile:    "server.log",
				OutputFile: "last_25_thoughts.md",
				Count:      25,
			},
		},
		{
			name: "log and output file",
			args: []string{"server.log", "out.md"},
			exp: &thought.Param{
				LogFile:    "server.log",
				OutputFile: "out.md",
				Count:      25,
			},
		},
		{
			name: "all arguments",
			args: []string{"server.log", "out.md", "10"},
			exp: &thought.Param{
				LogFile:    "server.log",
				OutputFile: "out.md",
				Count:      10,
			},
		},
		{
			name:  "count is not a number",
			args:  []string{"server.log", "out.md", "ten"},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, err := buildThoughtParam(cfg, d.args)
			if d.isErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func Test_buildThoughtParam_tooManyArgs(t *testing.T) {
	t.Parallel()
	_, err := buildThoughtParam(&config.Thoughts{}, []string{"a", "b", "1", "c"})
	if !errors.Is(err, errTooManyArgs) {
		t.Errorf("wanted %v, got %v", errTooManyArgs, err)
	}
}

func Test_readConfig(t *testing.T) {
	t.Parallel()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	logE := logrus.NewEntry(logger)

	t.Run("no configuration file", func(t *testing.T) {
		t.Parallel()
		cfg, err := readConfig(logE, afero.NewMemMapFs(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(&config.Config{}, cfg); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("found in the current directory", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".docaudit.yaml", []byte("tracking_dir: docs\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := readConfig(logE, fs, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TrackingDir != "docs" {
			t.Errorf("TrackingDir: wanted %q, got %q", "docs", cfg.TrackingDir)
		}
	})

	t.Run("explicit path is missing", func(t *testing.T) {
		t.Parallel()
		if _, err := readConfig(logE, afero.NewMemMapFs(), "missing.yaml"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
