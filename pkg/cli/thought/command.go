// Package thought implements the 'docaudit thoughts' command.
package thought

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
	return &cli.Command{
		Name:      "thoughts",
		Usage:     "Extract the last sequential thinking thoughts from a MCP log",
		ArgsUsage: "[LOG_FILE [OUTPUT_FILE [COUNT]]]",
		Description: `Extract the last thoughts from a MCP log file and write them to a markdown file.

$ docaudit thoughts

Arguments override the log file, the output file, and the number of thoughts in that order.

e.g.

$ docaudit thoughts mcp.log last_thoughts.md 10
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, globalFlags, c.Args().Slice())
		},
	}
}

func (r *runner) action(ctx context.Context, globalFlags *flag.GlobalFlags, args []string) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	return di.ExtractThoughts(ctx, r.logE, &di.ThoughtFlags{ //nolint:wrapcheck
		GlobalFlags: globalFlags,
		PWD:         pwd,
		Args:        args,
	})
}
