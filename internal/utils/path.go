package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveDataDir finds the directory holding the layout version files.
// Candidates are tried in order of preference:
// 1. The user-specified path as given (absolute, or relative to cwd)
// 2. Relative to the executable directory
// A directory qualifies when it contains at least one .json file; if no
// candidate qualifies, the user-specified path is returned so errors
// report the path the user asked for.
func ResolveDataDir(userSpecified string) (string, error) {
	var candidates []string

	if filepath.IsAbs(userSpecified) {
		candidates = append(candidates, userSpecified)
	} else {
		if cwd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(cwd, userSpecified))
		}
	}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates, filepath.Join(execDir, userSpecified))
	}

	for _, path := range candidates {
		if isValidDataDir(path) {
			log.Debugf("Found valid data directory: %s", path)
			return path, nil
		}
		log.Debugf("Data directory candidate not valid: %s", path)
	}
	return userSpecified, nil
}

// isValidDataDir checks if a directory contains layout version files
func isValidDataDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return false
	}
	return len(matches) > 0
}
