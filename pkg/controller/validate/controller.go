// Package validate implements the documentation audit run by 'docaudit validate'.
// It checks that the project overview and the latest work file were updated
// recently, that the overview keeps its required sections, and that every
// populated folder carries a README marker folder. Checks only read the
// filesystem. Their findings are collected into an immutable Report which the
// Printer renders separately, so the audit itself can be tested without
// capturing terminal output.
package validate

import (
	"io"
	"time"

	"github.com/fractal-rmo/docaudit/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs      afero.Fs
	cfg     *config.Config
	param   *ParamRun
	printer *Printer
	checks  []*check
}

type ParamRun struct {
	Now    time.Time
	Stdout io.Writer
}

type check struct {
	name string
	run  func(r *recorder) (bool, error)
}

// New returns a Controller. cfg must already be initialized with config.Config.Init.
func New(fs afero.Fs, cfg *config.Config, param *ParamRun) *Controller {
	c := &Controller{
		fs:      fs,
		cfg:     cfg,
		param:   param,
		printer: NewPrinter(param.Stdout),
	}
	c.checks = []*check{
		{name: "Project Overview", run: c.checkOverview},
		{name: "Work Files", run: c.checkWorkFiles},
		{name: "README Files", run: c.checkReadmes},
		{name: "Timestamp Format", run: c.checkTimestamps},
	}
	return c
}

func (c *Controller) hoursSince(t time.Time) float64 {
	return c.param.Now.Sub(t).Hours()
}
