package paths

import (
	"os"
	"path/filepath"
)

type Paths struct {
	ConfigDir string
	DataDir   string
	CacheDir  string
}

// GetPaths returns all base paths respecting environment variables
func GetPaths() Paths {
	return Paths{
		ConfigDir: getDir("SEQLIB_CONFIG_HOME", "XDG_CONFIG_HOME", ".config", "seqlib"),
		DataDir:   getDir("SEQLIB_DATA_HOME", "XDG_DATA_HOME", ".local/share", "seqlib"),
		CacheDir:  getDir("SEQLIB_CACHE_HOME", "XDG_CACHE_HOME", ".cache", "seqlib"),
	}
}

func getDir(appEnv, xdgEnv, defaultBase, appName string) string {
	// 1. Check seqlib-specific env
	if dir := os.Getenv(appEnv); dir != "" {
		return dir
	}

	// 2. Check XDG env
	if xdgBase := os.Getenv(xdgEnv); xdgBase != "" {
		return filepath.Join(xdgBase, appName)
	}

	// 3. Use default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, defaultBase, appName)
}

// GetCatalogPath returns the path to the local catalog database
func GetCatalogPath() string {
	if path := os.Getenv("SEQLIB_CATALOG_PATH"); path != "" {
		return path
	}
	return filepath.Join(GetPaths().DataDir, "seqlib.db")
}

// EnsureDirectories creates the base directories if they do not exist
func EnsureDirectories() error {
	p := GetPaths()
	for _, dir := range []string{p.ConfigDir, p.DataDir, p.CacheDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
