package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

type workFile struct {
	path string
	info os.FileInfo
}

// latestWorkFile returns the most recently modified work file, or nil if there is none.
// Work files are files directly inside folders directly under the tracking directory.
// Hidden names match like any other name.
func (c *Controller) latestWorkFile() (*workFile, error) {
	trackingDir := filepath.Join(c.cfg.Root, c.cfg.TrackingDir)
	folders, err := afero.ReadDir(c.fs, trackingDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("read the tracking directory: %w", err)
	}
	var latest *workFile
	for _, folder := range folders {
		if !folder.IsDir() || !globMatch(c.cfg.WorkFiles.FolderPattern, folder.Name()) {
			continue
		}
		dir := filepath.Join(trackingDir, folder.Name())
		files, err := afero.ReadDir(c.fs, dir)
		if err != nil {
			return nil, fmt.Errorf("read a work folder %s: %w", folder.Name(), err)
		}
		for _, file := range files {
			if file.IsDir() || !globMatch(c.cfg.WorkFiles.FilePattern, file.Name()) {
				continue
			}
			if latest == nil || file.ModTime().After(latest.info.ModTime()) {
				latest = &workFile{path: filepath.Join(dir, file.Name()), info: file}
			}
		}
	}
	return latest, nil
}

// globMatch matches a single path element.
// It uses the same matcher as config.WorkFiles.Init, which validates the pattern.
func globMatch(pattern, name string) bool {
	f, _ := path.Match(pattern, name)
	return f
}

func (c *Controller) checkWorkFiles(r *recorder) (bool, error) {
	latest, err := c.latestWorkFile()
	if err != nil {
		return false, err
	}
	if latest == nil {
		r.warn("No work files found yet (OK if just starting)")
		return true, nil
	}
	maxAge := c.cfg.WorkFiles.MaxAgeHours
	hours := c.hoursSince(latest.info.ModTime())
	if hours > maxAge {
		r.fail(ErrStaleArtifact, "Latest work file updated %.1f hours ago (>%g hours)", hours, maxAge)
		r.fail(ErrStaleArtifact, "  File: %s", latest.info.Name())
		r.fail(ErrStaleArtifact, "  FIX: Add work entry using template in §3.2")
		return false, nil
	}
	r.success("Work file updated %.1f hours ago ✓", hours)
	return true, nil
}
