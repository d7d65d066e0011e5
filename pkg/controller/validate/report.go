package validate

// Report is the result of one audit run. It is built once by Audit and never
// modified afterwards; accessors return copies.
type Report struct {
	findings []*Finding
	checks   []*CheckResult
	passed   bool
}

func (r *Report) Passed() bool {
	return r.passed
}

func (r *Report) Checks() []*CheckResult {
	return append([]*CheckResult(nil), r.checks...)
}

// Findings returns every finding in the order checks recorded them.
func (r *Report) Findings() []*Finding {
	return append([]*Finding(nil), r.findings...)
}

func (r *Report) Successes() []*Finding {
	return r.filter(KindSuccess)
}

func (r *Report) Warnings() []*Finding {
	return r.filter(KindWarning)
}

func (r *Report) Failures() []*Finding {
	return r.filter(KindFailure)
}

func (r *Report) filter(kind Kind) []*Finding {
	var findings []*Finding
	for _, f := range r.findings {
		if f.Kind == kind {
			findings = append(findings, f)
		}
	}
	return findings
}
