// ABOUTME: Standard filesystem paths for charflow configuration
// ABOUTME: ~/.charflow/config.yaml is global; .charflow.yaml in the project root overrides it

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName      = ".charflow"
	globalFileName     = "config.yaml"
	projectFileName    = ".charflow.yaml"
	defaultLogFileName = "charflow.log"
)

// GlobalDir returns the user-global config directory (~/.charflow/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), globalFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}

// ConfigFiles lists every file Load reads, global first.
func ConfigFiles(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}

// DefaultLogFile is where the demo logs when debug is on and no log_file
// is configured.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), defaultLogFileName)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
