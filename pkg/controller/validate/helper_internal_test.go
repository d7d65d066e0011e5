package validate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fractal-rmo/docaudit/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const testRoot = "/workspace"

var (
	testNow     = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	errReadDeny = errors.New("permission denied")
)

const fullOverview = `# Project Overview

## SHORT-TERM MEMORY
- wired the validator

## CURRENT WORK CONTEXT
- docs

## TECHNICAL SETUP
- go
`

func newTestController(t *testing.T, fs afero.Fs) *Controller {
	t.Helper()
	cfg := &config.Config{Root: testRoot}
	if err := cfg.Init("/"); err != nil {
		t.Fatal(err)
	}
	return New(fs, cfg, &ParamRun{Now: testNow, Stdout: &bytes.Buffer{}})
}

func newTestLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logrus.NewEntry(logger)
}

// writeFile creates p under testRoot whose modification time is age before testNow.
func writeFile(t *testing.T, fs afero.Fs, p, content string, age time.Duration) {
	t.Helper()
	p = filepath.Join(testRoot, filepath.FromSlash(p))
	if err := fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := testNow.Add(-age)
	if err := fs.Chtimes(p, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, fs afero.Fs, p string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Join(testRoot, filepath.FromSlash(p)), 0o755); err != nil {
		t.Fatal(err)
	}
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func messages(findings []*Finding) []string {
	msgs := make([]string, len(findings))
	for i, f := range findings {
		msgs[i] = f.Message
	}
	return msgs
}

// unreadableFs can stat files but fails to open them.
type unreadableFs struct {
	afero.Fs
}

func (u *unreadableFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: errReadDeny}
}
