package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ViewerConfig holds configuration for the interactive viewer.
type ViewerConfig struct {
	// Sort is the column applied on startup (1-5 or a header name).
	Sort string `yaml:"sort,omitempty"`
	// Widths overrides the display width of columns 0-5, in order.
	// Zero or missing entries keep the default width.
	Widths []int `yaml:"widths,omitempty"`
	// Mouse enables click-to-sort and click-to-filter.
	Mouse *bool `yaml:"mouse,omitempty"`
	// LogFile receives viewer logs while the alternate screen is active.
	LogFile string `yaml:"log_file,omitempty"`
}

// Config holds utilview configuration
type Config struct {
	Report   string       `yaml:"report"`
	LogLevel string       `yaml:"log_level"`
	Viewer   ViewerConfig `yaml:"viewer"`
}

// MouseEnabled reports whether mouse input is on (default true).
func (c *Config) MouseEnabled() bool {
	return c.Viewer.Mouse == nil || *c.Viewer.Mouse
}

type fileConfig struct {
	Report   string       `yaml:"report"`
	LogLevel string       `yaml:"log_level"`
	Viewer   ViewerConfig `yaml:"viewer"`
}

const (
	configFile   = "config.yaml"
	repoDirName  = ".utilview"
	globalDirApp = "utilview"
)

// Load loads configuration with the following precedence (highest first):
// 1. Repo-local .utilview/config.yaml in the current directory
// 2. Parent .utilview/config.yaml files (searched upward from cwd)
// 3. Environment variables
// 4. Global ~/.config/utilview/config.yaml
func Load() (*Config, error) {
	cfg := &Config{}

	globalPath := globalConfigPath()
	if globalPath != "" {
		if err := loadFromFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)

	repoPaths, err := findRepoConfigs()
	if err != nil {
		return nil, err
	}
	for _, repoPath := range repoPaths {
		if err := loadFromFile(repoPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return cfg, nil
}

// findRepoConfigs searches upward from cwd for .utilview/config.yaml files.
// Returned paths are ordered from furthest ancestor to closest (highest precedence last).
func findRepoConfigs() ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dir := cwd
	var paths []string
	for {
		configPath := filepath.Join(dir, repoDirName, configFile)
		if _, err := os.Stat(configPath); err == nil {
			paths = append(paths, configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for i, j := 0, len(paths)-1; i < j; i, j = i+1, j-1 {
		paths[i], paths[j] = paths[j], paths[i]
	}

	return paths, nil
}

func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", globalDirApp, configFile)
}

// loadFromFile merges non-empty values from a YAML file into cfg.
// Relative report and log paths resolve against the repo root for
// .utilview/config.yaml, or the config directory otherwise.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	baseDir := configDir
	if filepath.Base(configDir) == repoDirName {
		baseDir = filepath.Dir(configDir)
	}

	if fileCfg.Report != "" {
		cfg.Report = resolvePathFromConfig(fileCfg.Report, baseDir)
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Viewer.Sort != "" {
		cfg.Viewer.Sort = fileCfg.Viewer.Sort
	}
	if len(fileCfg.Viewer.Widths) > 0 {
		cfg.Viewer.Widths = fileCfg.Viewer.Widths
	}
	if fileCfg.Viewer.Mouse != nil {
		cfg.Viewer.Mouse = fileCfg.Viewer.Mouse
	}
	if fileCfg.Viewer.LogFile != "" {
		cfg.Viewer.LogFile = resolvePathFromConfig(fileCfg.Viewer.LogFile, baseDir)
	}

	return nil
}

func resolvePathFromConfig(path, baseDir string) string {
	if path == "" {
		return ""
	}

	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	return path
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("UTILVIEW_REPORT"); v != "" {
		cfg.Report = v
	}
	if v := os.Getenv("UTILVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("UTILVIEW_SORT"); v != "" {
		cfg.Viewer.Sort = v
	}
	if v := os.Getenv("UTILVIEW_MOUSE"); v != "" {
		on := v == "true" || v == "1" || v == "yes"
		cfg.Viewer.Mouse = &on
	}
}

// ExpandPath expands ~ and makes path absolute relative to base
func ExpandPath(path, base string) string {
	if path == "" {
		return ""
	}

	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}

	if !filepath.IsAbs(path) && base != "" {
		path = filepath.Join(base, path)
	}

	return path
}
