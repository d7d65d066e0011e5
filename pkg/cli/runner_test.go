package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fractal-rmo/docaudit/pkg/cli"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
)

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logrus.NewEntry(logger)
}

var ldFlags = &stdutil.LDFlags{ //nolint:gochecknoglobals
	Version: "v1.2.3",
	Commit:  "0123abc",
	Date:    "2025-09-01T00:00:00Z",
}

func TestNew(t *testing.T) {
	t.Parallel()
	cmd := cli.New(newLogE(), ldFlags, &bytes.Buffer{})
	if cmd.Version != "v1.2.3" {
		t.Errorf("Version: wanted %q, got %q", "v1.2.3", cmd.Version)
	}
	names := make([]string, len(cmd.Commands))
	for i, c := range cmd.Commands {
		names[i] = c.Name
	}
	if diff := cmp.Diff([]string{"validate", "thoughts", "init", "version", "help-all"}, names); diff != "" {
		t.Fatal(diff)
	}
}

func TestNew_version(t *testing.T) {
	t.Parallel()
	t.Run("text", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		if err := cli.New(newLogE(), ldFlags, buf).Run(context.Background(), []string{"docaudit", "version"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "v1.2.3\n" {
			t.Errorf("wanted %q, got %q", "v1.2.3\n", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		if err := cli.New(newLogE(), ldFlags, buf).Run(context.Background(), []string{"docaudit", "version", "--json"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := map[string]string{}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("unexpected output %q: %v", buf.String(), err)
		}
		exp := map[string]string{"name": "docaudit", "version": "v1.2.3", "sha": "0123abc"}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatal(diff)
		}
	})
}
