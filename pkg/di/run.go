// Package di creates and wires together the dependencies of the docaudit commands.
package di

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fractal-rmo/docaudit/pkg/config"
	"github.com/fractal-rmo/docaudit/pkg/controller/thought"
	"github.com/fractal-rmo/docaudit/pkg/controller/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var errTooManyArgs = errors.New("too many arguments")

// Validate audits the workspace and prints the report to the standard output.
func Validate(ctx context.Context, logE *logrus.Entry, flags *ValidateFlags) error {
	fs := afero.NewOsFs()
	cfg, err := readConfig(logE, fs, flags.Config)
	if err != nil {
		return err
	}
	if flags.Root != "" {
		cfg.Root = flags.Root
	}
	if err := cfg.Init(flags.PWD); err != nil {
		return fmt.Errorf("initialize the configuration: %w", err)
	}
	ctrl := validate.New(fs, cfg, &validate.ParamRun{
		Now:    time.Now(),
		Stdout: os.Stdout,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// ExtractThoughts writes the last thoughts of a MCP log to a markdown file.
func ExtractThoughts(_ context.Context, logE *logrus.Entry, flags *ThoughtFlags) error {
	fs := afero.NewOsFs()
	cfg, err := readConfig(logE, fs, flags.Config)
	if err != nil {
		return err
	}
	if err := cfg.Init(flags.PWD); err != nil {
		return fmt.Errorf("initialize the configuration: %w", err)
	}
	param, err := buildThoughtParam(cfg.Thoughts, flags.Args)
	if err != nil {
		return err
	}
	param.Now = time.Now()
	ctrl := thought.New(fs, param, os.Stdout)
	if _, err := ctrl.Extract(logE); err != nil {
		return fmt.Errorf("extract thoughts: %w", err)
	}
	return nil
}

func readConfig(logE *logrus.Entry, fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	if configPath != "" {
		logE.WithField("config_file", configPath).Debug("read the configuration file")
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

// buildThoughtParam overrides the configured values with positional arguments.
func buildThoughtParam(cfg *config.Thoughts, args []string) (*thought.Param, error) {
	param := &thought.Param{
		LogFile:    cfg.LogFile,
		OutputFile: cfg.OutputFile,
		Count:      cfg.Count,
	}
	switch {
	case len(args) > 3: //nolint:mnd
		return nil, errTooManyArgs
	case len(args) == 3: //nolint:mnd
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("parse the number of thoughts: %w", err)
		}
		param.Count = n
		fallthrough
	case len(args) == 2: //nolint:mnd
		param.OutputFile = args[1]
		fallthrough
	case len(args) == 1:
		param.LogFile = args[0]
	}
	return param, nil
}
