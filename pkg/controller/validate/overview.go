package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func (c *Controller) overviewPath() string {
	return filepath.Join(c.cfg.Root, c.cfg.TrackingDir, filepath.FromSlash(c.cfg.Overview.Path))
}

// checkOverview passes if the overview file exists, is fresh, and has every section.
// The sections are checked even if the file is stale.
func (c *Controller) checkOverview(r *recorder) (bool, error) {
	p := c.overviewPath()
	info, err := c.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.fail(ErrMissingArtifact, "Project Overview file not found!")
			return false, nil
		}
		return false, fmt.Errorf("get the overview file info: %w", err)
	}

	passed := true
	maxAge := c.cfg.Overview.MaxAgeHours
	if hours := c.hoursSince(info.ModTime()); hours > maxAge {
		r.fail(ErrStaleArtifact, "Project Overview last updated %.1f hours ago (>%g hours)", hours, maxAge)
		r.fail(ErrStaleArtifact, "  FIX: Update short-term memory using template in §2.1")
		passed = false
	} else {
		r.success("Project Overview updated %.1f hours ago ✓", hours)
	}

	b, err := afero.ReadFile(c.fs, p)
	if err != nil {
		return false, fmt.Errorf("read the overview file: %w", err)
	}
	content := string(b)
	for _, section := range c.cfg.Overview.Sections {
		if !strings.Contains(content, section) {
			r.fail(ErrIncompleteContent, "Missing section: %s", section)
			return false, nil
		}
	}
	return passed, nil
}
