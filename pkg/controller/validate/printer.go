package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

// Printer renders the audit progress and Report as colored text.
type Printer struct {
	stdout     io.Writer
	bold       colorFunc
	red        colorFunc
	blue       colorFunc
	green      colorFunc
	boldRed    colorFunc
	boldGreen  colorFunc
	boldYellow colorFunc
}

func NewPrinter(stdout io.Writer) *Printer {
	return &Printer{
		stdout:     stdout,
		bold:       color.New(color.Bold).SprintFunc(),
		red:        color.New(color.FgRed).SprintFunc(),
		blue:       color.New(color.FgBlue).SprintFunc(),
		green:      color.New(color.FgGreen).SprintFunc(),
		boldRed:    color.New(color.FgRed, color.Bold).SprintFunc(),
		boldGreen:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		boldYellow: color.New(color.FgYellow, color.Bold).SprintFunc(),
	}
}

var rule = strings.Repeat("=", 60) //nolint:mnd

func (p *Printer) Header() {
	fmt.Fprintf(p.stdout, "\n%s\n%s\n%s\n\n", p.bold(rule), p.bold("SESSION END VALIDATOR"), p.bold(rule))
}

func (p *Printer) Progress(result *CheckResult) {
	mark := p.green("✓")
	if !result.Passed {
		mark = p.red("✗")
	}
	fmt.Fprintf(p.stdout, "Checking %s... %s\n", result.Name, mark)
}

// Report prints the findings grouped by kind and the final banner.
// guidelinesDir is referred to when the audit failed.
func (p *Printer) Report(report *Report, guidelinesDir string) {
	fmt.Fprintf(p.stdout, "\n%s\n", p.bold(rule))

	if successes := report.Successes(); len(successes) > 0 {
		fmt.Fprintf(p.stdout, "\n%s\n", p.boldGreen("✅ PASSED CHECKS:"))
		p.findings(successes)
	}
	if warnings := report.Warnings(); len(warnings) > 0 {
		fmt.Fprintf(p.stdout, "\n%s\n", p.boldYellow("⚠️  WARNINGS:"))
		p.findings(warnings)
	}
	if failures := report.Failures(); len(failures) > 0 {
		fmt.Fprintf(p.stdout, "\n%s\n%s\n", p.boldRed("❌ VALIDATION FAILED:"), p.red("MISSING UPDATES:"))
		p.findings(failures)
	}

	fmt.Fprintf(p.stdout, "\n%s\n", p.bold(rule))
	if report.Passed() {
		fmt.Fprintln(p.stdout, p.boldGreen("✅ VALIDATION PASSED"))
		fmt.Fprintln(p.stdout, "Session Complete: OK to end")
	} else {
		fmt.Fprintln(p.stdout, p.boldRed("❌ VALIDATION FAILED"))
		fmt.Fprintln(p.stdout, "Fix issues above before ending session")
		fmt.Fprintf(p.stdout, "\nRefer to: %s\n", p.blue(guidelinesDir))
	}
	fmt.Fprintf(p.stdout, "%s\n\n", p.bold(rule))
}

func (p *Printer) findings(findings []*Finding) {
	for _, f := range findings {
		fmt.Fprintf(p.stdout, "  %s\n", f.Message)
	}
}
