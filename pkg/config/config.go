// Package config loads the docaudit configuration file.
// Every field is optional. Init fills in defaults that describe the
// standard workspace layout, so running without a configuration file audits
// the current directory with the built-in rules.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTrackingDir   = "12--(Progress)_(Tracking)_(What)_(We)_(Did)"
	DefaultGuidelinesDir = "0.1--(Contribution)_(Guidelines)_(MUST_READ)"
	DefaultOverviewPath  = "0.2--(Project)_(Overview)_(Current)_(State)/(Project)_(Overview)_(Current)_(State).md"
	DefaultReadmeFolder  = "0--(README_Folder)"
	DefaultReadmeFile    = "(README_Folder).md"
	DefaultTimestamp     = "[YYYY-MM-DD | HH:MM-HH:MM PST | Agent-Version]"
	DefaultThoughtLog    = "mcp.log"
	DefaultThoughtOutput = "last_25_thoughts.md"
	DefaultThoughtCount  = 25

	defaultOverviewMaxAge = 2
	defaultWorkFileMaxAge = 4
	defaultMinEntries     = 2
	defaultMaxListed      = 5
	defaultHiddenPrefix   = "."
	defaultFolderPattern  = "[0-9]*--*"
	defaultFilePattern    = "*.md"
)

type Config struct {
	Root          string     `json:"root,omitempty" jsonschema:"description=Workspace root to audit. Relative paths are resolved from the current directory"`
	TrackingDir   string     `json:"tracking_dir,omitempty" yaml:"tracking_dir" jsonschema:"description=Progress tracking directory relative to root"`
	GuidelinesDir string     `json:"guidelines_dir,omitempty" yaml:"guidelines_dir" jsonschema:"description=Contribution guidelines shown when the audit fails"`
	Overview      *Overview  `json:"overview,omitempty"`
	WorkFiles     *WorkFiles `json:"work_files,omitempty" yaml:"work_files"`
	Readme        *Readme    `json:"readme,omitempty"`
	Timestamp     *Timestamp `json:"timestamp,omitempty"`
	Thoughts      *Thoughts  `json:"thoughts,omitempty"`
}

type Overview struct {
	Path        string   `json:"path,omitempty" jsonschema:"description=Overview file path relative to tracking_dir"`
	MaxAgeHours float64  `json:"max_age_hours,omitempty" yaml:"max_age_hours"`
	Sections    []string `json:"sections,omitempty" jsonschema:"description=Section markers which must appear in the overview file. Checked in order"`
}

type WorkFiles struct {
	FolderPattern string  `json:"folder_pattern,omitempty" yaml:"folder_pattern" jsonschema:"description=Glob matched against folder names directly under tracking_dir"`
	FilePattern   string  `json:"file_pattern,omitempty" yaml:"file_pattern" jsonschema:"description=Glob matched against file names in work folders"`
	MaxAgeHours   float64 `json:"max_age_hours,omitempty" yaml:"max_age_hours"`
}

type Readme struct {
	Folder       string   `json:"folder,omitempty"`
	File         string   `json:"file,omitempty"`
	MinEntries   int      `json:"min_entries,omitempty" yaml:"min_entries" jsonschema:"description=Directories with at least this many visible entries need a README"`
	HiddenPrefix string   `json:"hidden_prefix,omitempty" yaml:"hidden_prefix"`
	ExcludeDirs  []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs" jsonschema:"description=Directory names skipped together with their descendants"`
	MaxListed    int      `json:"max_listed,omitempty" yaml:"max_listed"`
}

type Timestamp struct {
	Format string `json:"format,omitempty"`
}

type Thoughts struct {
	LogFile    string `json:"log_file,omitempty" yaml:"log_file"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file"`
	Count      int    `json:"count,omitempty"`
}

// Init fills unset fields with their defaults and validates the result.
// Root is resolved against pwd.
func (c *Config) Init(pwd string) error {
	if c.Root == "" {
		c.Root = pwd
	} else if !filepath.IsAbs(c.Root) {
		c.Root = filepath.Join(pwd, c.Root)
	}
	if c.TrackingDir == "" {
		c.TrackingDir = DefaultTrackingDir
	}
	if c.GuidelinesDir == "" {
		c.GuidelinesDir = DefaultGuidelinesDir
	}
	if c.Overview == nil {
		c.Overview = &Overview{}
	}
	if err := c.Overview.Init(); err != nil {
		return fmt.Errorf("initialize overview: %w", err)
	}
	if c.WorkFiles == nil {
		c.WorkFiles = &WorkFiles{}
	}
	if err := c.WorkFiles.Init(); err != nil {
		return fmt.Errorf("initialize work_files: %w", err)
	}
	if c.Readme == nil {
		c.Readme = &Readme{}
	}
	if err := c.Readme.Init(); err != nil {
		return fmt.Errorf("initialize readme: %w", err)
	}
	if c.Timestamp == nil {
		c.Timestamp = &Timestamp{}
	}
	if c.Timestamp.Format == "" {
		c.Timestamp.Format = DefaultTimestamp
	}
	if c.Thoughts == nil {
		c.Thoughts = &Thoughts{}
	}
	if err := c.Thoughts.Init(); err != nil {
		return fmt.Errorf("initialize thoughts: %w", err)
	}
	return nil
}

func (o *Overview) Init() error {
	if o.Path == "" {
		o.Path = DefaultOverviewPath
	}
	if o.MaxAgeHours == 0 {
		o.MaxAgeHours = defaultOverviewMaxAge
	}
	if o.MaxAgeHours < 0 {
		return errors.New("max_age_hours must be positive")
	}
	if len(o.Sections) == 0 {
		o.Sections = []string{"SHORT-TERM MEMORY", "CURRENT WORK CONTEXT", "TECHNICAL SETUP"}
	}
	for _, s := range o.Sections {
		if s == "" {
			return errors.New("sections must not contain an empty marker")
		}
	}
	return nil
}

func (w *WorkFiles) Init() error {
	if w.FolderPattern == "" {
		w.FolderPattern = defaultFolderPattern
	}
	if w.FilePattern == "" {
		w.FilePattern = defaultFilePattern
	}
	if w.MaxAgeHours == 0 {
		w.MaxAgeHours = defaultWorkFileMaxAge
	}
	if w.MaxAgeHours < 0 {
		return errors.New("max_age_hours must be positive")
	}
	if _, err := path.Match(w.FolderPattern, "a"); err != nil {
		return fmt.Errorf("parse folder_pattern as a glob: %w", err)
	}
	if _, err := path.Match(w.FilePattern, "a"); err != nil {
		return fmt.Errorf("parse file_pattern as a glob: %w", err)
	}
	return nil
}

func (r *Readme) Init() error {
	if r.Folder == "" {
		r.Folder = DefaultReadmeFolder
	}
	if r.File == "" {
		r.File = DefaultReadmeFile
	}
	if r.MinEntries == 0 {
		r.MinEntries = defaultMinEntries
	}
	if r.MinEntries < 0 {
		return errors.New("min_entries must be positive")
	}
	if r.HiddenPrefix == "" {
		r.HiddenPrefix = defaultHiddenPrefix
	}
	if r.ExcludeDirs == nil {
		r.ExcludeDirs = []string{"venv", "__pycache__"}
	}
	if r.MaxListed == 0 {
		r.MaxListed = defaultMaxListed
	}
	if r.MaxListed < 0 {
		return errors.New("max_listed must be positive")
	}
	return nil
}

func (t *Thoughts) Init() error {
	if t.LogFile == "" {
		t.LogFile = DefaultThoughtLog
	}
	if t.OutputFile == "" {
		t.OutputFile = DefaultThoughtOutput
	}
	if t.Count == 0 {
		t.Count = DefaultThoughtCount
	}
	if t.Count < 0 {
		return errors.New("count must be positive")
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".docaudit.yaml", ".docaudit.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes configFilePath into cfg. An empty path leaves cfg untouched.
// Read doesn't call Init.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return nil
		}
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return nil
}
