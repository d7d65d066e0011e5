// Package cli builds the docaudit command line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/fractal-rmo/docaudit/pkg/cli/flag"
	"github.com/fractal-rmo/docaudit/pkg/cli/initcmd"
	"github.com/fractal-rmo/docaudit/pkg/cli/thought"
	"github.com/fractal-rmo/docaudit/pkg/cli/validate"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	return New(logE, ldFlags, os.Stdout).Run(ctx, args) //nolint:wrapcheck
}

// New returns the root command.
// The version and help-all subcommands are added by urfave.Command and write to stdout.
func New(logE *logrus.Entry, ldFlags *stdutil.LDFlags, stdout io.Writer) *cli.Command {
	globalFlags := &flag.GlobalFlags{}
	return urfave.Command(ldFlags, &cli.Command{
		Name:   "docaudit",
		Usage:  "Check that the workspace documentation is up to date before ending a session",
		Writer: stdout,
		Flags:  globalFlags.Flags(),
		Commands: []*cli.Command{
			validate.New(logE, globalFlags),
			thought.New(logE, globalFlags),
			initcmd.New(logE, globalFlags),
		},
	})
}
