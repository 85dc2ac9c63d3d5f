// Package config handles the shipped configuration, paths and logging setup.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user cache directory.
	AppDirName = "vrcsend"

	// LogFileName is the name of the log file inside the cache directory.
	LogFileName = "vrcsend.log"
)

// AppDir returns the path to the application's cache directory.
func AppDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// LogFile returns the path to the log file.
func LogFile() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// EnsureAppDir creates the cache directory if it doesn't exist.
func EnsureAppDir() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
