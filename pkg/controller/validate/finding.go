package validate

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindWarning
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

var (
	ErrMissingArtifact   = errors.New("required artifact is missing")
	ErrStaleArtifact     = errors.New("artifact is stale")
	ErrIncompleteContent = errors.New("required content is missing")
	ErrStructuralGap     = errors.New("folder lacks a README")
	ErrValidationFailed  = errors.New("documentation validation failed")

	errCheckPanicked = errors.New("check panicked")
)

// Finding is a single line of the report.
// Reason is set for failures and tells which rule produced them.
type Finding struct {
	Kind    Kind
	Message string
	Reason  error
}

type CheckResult struct {
	Name   string
	Passed bool
}

type recorder struct {
	findings []*Finding
}

func (r *recorder) success(format string, a ...any) {
	r.findings = append(r.findings, &Finding{Kind: KindSuccess, Message: fmt.Sprintf(format, a...)})
}

func (r *recorder) warn(format string, a ...any) {
	r.findings = append(r.findings, &Finding{Kind: KindWarning, Message: fmt.Sprintf(format, a...)})
}

func (r *recorder) fail(reason error, format string, a ...any) {
	r.findings = append(r.findings, &Finding{Kind: KindFailure, Message: fmt.Sprintf(format, a...), Reason: reason})
}
