// Package initcmd implements the 'docaudit init' command.
// It writes a configuration file with the default audit rules so they can be
// adjusted to the workspace.
package initcmd

import (
	"context"
	"fmt"

	"github.com/fractal-rmo/docaudit/pkg/cli/flag"
	"github.com/fractal-rmo/docaudit/pkg/controller/initcmd"
	"github.com/fractal-rmo/docaudit/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
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
	return &cli.Command{
		Name:  "init",
		Usage: "Create .docaudit.yaml if it doesn't exist",
		Description: `Create .docaudit.yaml if it doesn't exist

$ docaudit init

You can also pass configuration file path.

e.g.

$ docaudit init docs/docaudit.yaml
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, globalFlags, c.Args().First())
		},
	}
}

func (r *runner) action(_ context.Context, globalFlags *flag.GlobalFlags, configFilePath string) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	if configFilePath == "" {
		configFilePath = globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".docaudit.yaml"
	}
	ctrl := initcmd.New(afero.NewOsFs())
	if err := ctrl.Init(r.logE, configFilePath); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
