package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

func (c *Controller) isExcludedDir(name string) bool {
	return strings.HasPrefix(name, c.cfg.Readme.HiddenPrefix) || slices.Contains(c.cfg.Readme.ExcludeDirs, name)
}

// foldersMissingReadme walks every directory below the root in lexical order
// and returns the relative paths of populated directories without a README.
// Excluded directories are skipped with all of their descendants.
func (c *Controller) foldersMissingReadme() ([]string, error) {
	root := c.cfg.Root
	rc := c.cfg.Readme
	issues := []string{}
	err := afero.Walk(c.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() || p == root {
			return nil
		}
		if c.isExcludedDir(info.Name()) {
			return filepath.SkipDir
		}
		entries, err := afero.ReadDir(c.fs, p)
		if err != nil {
			return fmt.Errorf("read a directory %s: %w", p, err)
		}
		visible := 0
		for _, entry := range entries {
			if !strings.HasPrefix(entry.Name(), rc.HiddenPrefix) {
				visible++
			}
		}
		if visible < rc.MinEntries {
			return nil
		}
		f, err := afero.Exists(c.fs, filepath.Join(p, rc.Folder, rc.File))
		if err != nil {
			return fmt.Errorf("check if a README exists in %s: %w", p, err)
		}
		if f {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("get a relative path: %w", err)
		}
		issues = append(issues, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk the workspace: %w", err)
	}
	return issues, nil
}

func (c *Controller) checkReadmes(r *recorder) (bool, error) {
	issues, err := c.foldersMissingReadme()
	if err != nil {
		return false, err
	}
	if len(issues) == 0 {
		r.success("All folders have required READMEs ✓")
		return true, nil
	}
	r.fail(ErrStructuralGap, "Folders missing README (%d found):", len(issues))
	maxListed := c.cfg.Readme.MaxListed
	for _, folder := range issues[:min(len(issues), maxListed)] {
		r.fail(ErrStructuralGap, "  - %s", folder)
	}
	if len(issues) > maxListed {
		r.fail(ErrStructuralGap, "  ... and %d more", len(issues)-maxListed)
	}
	r.fail(ErrStructuralGap, "  FIX: Create %s using template in §5.3", c.cfg.Readme.Folder)
	return false, nil
}
