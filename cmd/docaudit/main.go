package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fractal-rmo/docaudit/pkg/cli"
	"github.com/fractal-rmo/docaudit/pkg/controller/validate"
	"github.com/fractal-rmo/docaudit/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if code := exitCode(logE, core(logE)); code != 0 {
		os.Exit(code)
	}
}

// exitCode returns 0 only if the command succeeded.
// A failed audit has already been reported on stdout, so it isn't logged.
func exitCode(logE *logrus.Entry, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, validate.ErrValidationFailed) {
		logerr.WithError(logE, err).Error("docaudit failed")
	}
	return 1
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &stdutil.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
