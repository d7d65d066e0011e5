// Package thought implements 'docaudit thoughts'.
// It extracts the last N sequential thinking thoughts from a tool call log
// and writes them to a markdown file.
package thought

import (
	"io"
	"time"

	"github.com/spf13/afero"
)

type Controller struct {
	fs     afero.Fs
	param  *Param
	stdout io.Writer
}

type Param struct {
	LogFile    string
	OutputFile string
	Count      int
	Now        time.Time
}

func New(fs afero.Fs, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		fs:     fs,
		param:  param,
		stdout: stdout,
	}
}
