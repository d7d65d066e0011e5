package di

import "github.com/fractal-rmo/docaudit/pkg/cli/flag"

// ValidateFlags holds the command line options of the validate command.
type ValidateFlags struct {
	*flag.GlobalFlags

	Root string
	PWD  string
}

// ThoughtFlags holds the command line options of the thoughts command.
// Args are the positional arguments, LOG_FILE OUTPUT_FILE COUNT.
type ThoughtFlags struct {
	*flag.GlobalFlags

	PWD  string
	Args []string
}
