package application

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "repobook"

	// Version is the current release version
	Version = "0.2.0"
)

var (
	once    sync.Once
	confDir string
	errDir  error
)

// ConfigDirectory returns the repobook configuration directory path.
// Linux: ~/.config/repobook (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Roaming\repobook
func ConfigDirectory() (string, error) {
	once.Do(func() {
		base, err := os.UserConfigDir()
		if err != nil {
			errDir = err
			return
		}

		confDir = filepath.Join(base, AppName)
	})

	return confDir, errDir
}

// ConfigFilePath returns the path of the persisted configuration file.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}
