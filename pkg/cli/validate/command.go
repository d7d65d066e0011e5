// Package validate implements the 'docaudit validate' command.
package validate

import (
	"context"
	"fmt"
	"os"

	"github.com/fractal-rmo/docaudit/pkg/cli/flag"
	"github.com/fractal-rmo/docaudit/pkg/di"
	"github.com/fractal-rmo/docaudit/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command(globalFlags)
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &di.ValidateFlags{GlobalFlags: globalFlags}
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate that the documentation was updated during the session",
		Description: `Check the project overview, the latest work file, and folder READMEs.
The command exits with a non-zero status code if any check fails.

$ docaudit validate

By default the current directory is audited.
You can change the workspace root with the configuration file or --root.

$ docaudit validate --root "3--(PoC)_(Full)_(System)"
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "root",
				Usage:       "workspace root. This overrides root in the configuration file",
				Destination: &flags.Root,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *di.ValidateFlags) error {
	log.SetLevel(flags.LogLevel, r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags.PWD = pwd
	return di.Validate(ctx, r.logE, flags) //nolint:wrapcheck
}
