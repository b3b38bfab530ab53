package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no env file is given explicitly.
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from the given files into the process
// environment. Variables already set in the environment win.
// A missing DefaultEnvFile is tolerated; any other missing file is an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			glog.V(1).Infof("Loaded environment from %q.", path)
			continue
		}
		if errors.Is(err, fs.ErrNotExist) && path == DefaultEnvFile {
			glog.V(1).Infof("No %s file found, reading from process environment only.", DefaultEnvFile)
			continue
		}
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}
