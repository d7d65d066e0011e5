package validate

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Run audits the workspace and prints the report.
// It returns ErrValidationFailed if any check failed.
func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	logE.WithFields(logrus.Fields{
		"root":         c.cfg.Root,
		"tracking_dir": c.cfg.TrackingDir,
	}).Debug("start the documentation audit")
	c.printer.Header()
	report := c.Audit(logE, c.printer.Progress)
	c.printer.Report(report, c.cfg.GuidelinesDir)
	if !report.Passed() {
		return ErrValidationFailed
	}
	return nil
}

// Audit runs every check in order and builds the report.
// progress is called after each check and may be nil.
func (c *Controller) Audit(logE *logrus.Entry, progress func(*CheckResult)) *Report {
	report := &Report{passed: true}
	for _, chk := range c.checks {
		logE := logE.WithField("check", chk.name)
		passed, findings := c.runCheck(logE, chk)
		result := &CheckResult{Name: chk.name, Passed: passed}
		for _, f := range findings {
			if f.Reason != nil {
				logerr.WithError(logE, f.Reason).WithField("message", f.Message).Debug("record a failure")
			}
		}
		logE.WithField("passed", passed).Debug("finish a check")
		if progress != nil {
			progress(result)
		}
		report.checks = append(report.checks, result)
		report.findings = append(report.findings, findings...)
		if !passed {
			report.passed = false
		}
	}
	return report
}

// runCheck isolates a check so that an error or a panic only fails that check.
func (c *Controller) runCheck(logE *logrus.Entry, chk *check) (passed bool, findings []*Finding) {
	r := &recorder{}
	defer func() {
		if v := recover(); v != nil {
			logE.WithField("panic", v).Error("a check panicked")
			r.fail(errCheckPanicked, "%s check aborted: %v", chk.name, v)
			passed = false
		}
		findings = r.findings
	}()
	ok, err := chk.run(r)
	if err != nil {
		logerr.WithError(logE, err).Warn("a check failed unexpectedly")
		r.fail(err, "%s check failed: %v", chk.name, err)
		return false, nil
	}
	return ok, nil
}
