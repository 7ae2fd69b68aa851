// ABOUTME: Standard filesystem paths for hintmark configuration
// ABOUTME: Resolves ~/.hintmark/ for global and .hintmark/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".hintmark"
	projectDirName = ".hintmark"
)

// GlobalDir returns the user-global config directory (~/.hintmark/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.yaml")
}

// GlobalKeybindingsFile returns the path to the global keybindings file.
func GlobalKeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.yaml")
}

// LocalKeybindingsFile returns the path to the project-local keybindings file.
func LocalKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "keybindings.yaml")
}
