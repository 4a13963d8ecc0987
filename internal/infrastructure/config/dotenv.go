package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads dir/.env into the process environment when the file exists.
// Variables already set in the environment win. It returns the loaded path, or
// "" when there was no file.
func LoadDotEnv(dir string) (string, error) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if err := godotenv.Load(path); err != nil {
		return "", err
	}
	return path, nil
}
