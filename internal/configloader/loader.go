package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// envVarPrefix is the prefix for all cellflat environment variables.
const envVarPrefix = "CELLFLAT_"

// configFileNames are the project config file names we search for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".cellflat.yml",
	".cellflat.yaml",
	"cellflat.yml",
	"cellflat.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips CELLFLAT_* environment overrides.
	IgnoreEnv bool
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (CELLFLAT_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.cellflat.yml upward search)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("config load cancelled: %w", err)
	}

	cfg := Default()

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// FindProjectConfig searches upward from workDir for a config file,
// stopping at the VCS root or the filesystem root. Returns an empty
// path when nothing is found.
func FindProjectConfig(workDir string) (string, error) {
	dir := workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		atVCSRoot := false
		for _, marker := range vcsRootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				atVCSRoot = true
				break
			}
		}

		parent := filepath.Dir(dir)
		if atVCSRoot || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays CELLFLAT_* variables onto the configuration.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(envVarPrefix + "EXCLUDE_MARKUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sEXCLUDE_MARKUP value %q: %w", envVarPrefix, v, err)
		}
		cfg.ExcludeMarkup = b
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
