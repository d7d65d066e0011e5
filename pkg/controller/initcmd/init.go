// Package initcmd creates a docaudit configuration file.
package initcmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	templateConfig = `# docaudit configuration
# Every field is optional. The commented values are the defaults.
# root is resolved against the current directory.
# root: .
# tracking_dir: 12--(Progress)_(Tracking)_(What)_(We)_(Did)
# guidelines_dir: 0.1--(Contribution)_(Guidelines)_(MUST_READ)

overview:
  # path is relative to tracking_dir.
  # path: 0.2--(Project)_(Overview)_(Current)_(State)/(Project)_(Overview)_(Current)_(State).md
  # max_age_hours: 2
  # sections:
  #   - SHORT-TERM MEMORY
  #   - CURRENT WORK CONTEXT
  #   - TECHNICAL SETUP

work_files:
  # folder_pattern: "[0-9]*--*"
  # file_pattern: "*.md"
  # max_age_hours: 4

readme:
  # folder: 0--(README_Folder)
  # file: (README_Folder).md
  # min_entries: 2
  # hidden_prefix: "."
  # max_listed: 5
  exclude_dirs:
    - venv
    - __pycache__

# timestamp:
#   format: "[YYYY-MM-DD | HH:MM-HH:MM PST | Agent-Version]"

# thoughts:
#   log_file: mcp.log
#   output_file: last_25_thoughts.md
#   count: 25
`
	filePermission os.FileMode = 0o644
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init creates the configuration file if it doesn't exist.
// An existing file is left untouched.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config_file", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config_file", configFilePath).Info("created the configuration file")
	return nil
}
