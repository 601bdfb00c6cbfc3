// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/darray-cli/darray/constant"
	"github.com/darray-cli/darray/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DARRAY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring DARRAY_CONFIG_PATH.
// Without the override it falls back to os.UserConfigDir and then to the working directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
