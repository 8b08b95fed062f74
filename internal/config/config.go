package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/graysonarts/jdexmd/internal/application"
)

// EnvConfigFile names the environment variable consulted when --config-file
// is not given.
const EnvConfigFile = "JDEX_CONFIG"

// Format holds the handlebars template sources. Empty fields fall back to
// the built-in defaults.
type Format struct {
	System   string `toml:"system"`
	Area     string `toml:"area"`
	Category string `toml:"category"`
	Folder   string `toml:"folder"`
	XFolder  string `toml:"xfolder"`
	Markdown string `toml:"markdown"`
}

// Config is the single source of truth for one Johnny Decimal system.
type Config struct {
	SystemID        string `toml:"system_id"`
	Name            string `toml:"name"`
	Separator       string `toml:"separator"`
	BaseFolder      string `toml:"base_folder"`
	ReferenceFolder string `toml:"reference_folder"`
	// Hierarchy is the raw tab-indented system description.
	Hierarchy string `toml:"config"`
	Format    Format `toml:"format"`
}

// DefaultFormat returns the built-in templates. The listing templates emit
// Obsidian-style wiki links for folder tiers; the markdown template is the
// front matter stamped into fresh notes.
func DefaultFormat() Format {
	return Format{
		System:   "# {{name}}",
		Area:     "## {{id}} {{topic}}",
		Category: "- {{id}} {{topic}}",
		Folder:   "\t- [[{{id}} {{topic}}]]",
		XFolder:  "\t\t- [[{{id}} {{topic}}]]",
		Markdown: "---\naliases:\n  - {{id}} {{topic}}\ntags:\n  - jdex\n---\n",
	}
}

// Path returns the config file path from the JDEX_CONFIG env var, or "".
func Path() string {
	return os.Getenv(EnvConfigFile)
}

// Load reads and validates a TOML config file, filling defaults and
// expanding ~ in the output folders.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Separator == "" {
		cfg.Separator = "."
	}
	cfg.Format = cfg.Format.withDefaults()
	cfg.BaseFolder = ExpandUser(cfg.BaseFolder)
	cfg.ReferenceFolder = ExpandUser(cfg.ReferenceFolder)

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := application.ValidateRequired("system_id", c.SystemID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("base_folder", c.BaseFolder); err != nil {
		return err
	}
	return application.ValidateRequired("config", c.Hierarchy)
}

// Templates adapts the configured format to the renderer's template set.
func (c *Config) Templates() application.Templates {
	return application.Templates{
		System:   c.Format.System,
		Area:     c.Format.Area,
		Category: c.Format.Category,
		Folder:   c.Format.Folder,
		XFolder:  c.Format.XFolder,
		Markdown: c.Format.Markdown,
	}
}

func (f Format) withDefaults() Format {
	def := DefaultFormat()
	if f.System == "" {
		f.System = def.System
	}
	if f.Area == "" {
		f.Area = def.Area
	}
	if f.Category == "" {
		f.Category = def.Category
	}
	if f.Folder == "" {
		f.Folder = def.Folder
	}
	if f.XFolder == "" {
		f.XFolder = def.XFolder
	}
	if f.Markdown == "" {
		f.Markdown = def.Markdown
	}
	return f
}

// ExpandUser expands a leading ~ to the user home directory.
func ExpandUser(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
