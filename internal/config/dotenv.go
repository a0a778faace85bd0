package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// keys are the settings that may come from ELEVENLABS_* variables
var keys = []string{"api_key", "environment", "base_url", "timeout", "user_agent", "output", "log_level", "log_dir"}

// DotenvDirs returns the working directory and the executable directory, in lookup order
func DotenvDirs() []string {
	dirs := []string{"."}
	if execPath, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(execPath))
	}
	return dirs
}

// ApplyDotenv reads .env files from dirs and feeds their ELEVENLABS_* entries to v
// below environment variables and flags. The first file defining a key wins.
// It returns the files that were read.
func ApplyDotenv(v *viper.Viper, dirs ...string) ([]string, error) {
	known := make(map[string]bool, len(keys))
	for _, key := range keys {
		known[key] = true
	}

	var loaded []string
	seen := make(map[string]bool)
	applied := make(map[string]bool)
	for _, dir := range dirs {
		path, err := filepath.Abs(filepath.Join(dir, ".env"))
		if err != nil || seen[path] {
			continue
		}
		seen[path] = true

		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("read %s: %w", path, err)
		}
		loaded = append(loaded, path)

		for name, value := range values {
			key, ok := strings.CutPrefix(name, EnvPrefix+"_")
			if !ok {
				continue
			}
			key = strings.ToLower(key)
			if !known[key] || applied[key] {
				continue
			}
			applied[key] = true
			v.SetDefault(key, value)
		}
	}

	return loaded, nil
}
