package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ErrEnvFileNotFound is returned when none of the candidate locations holds a .env file.
var ErrEnvFileNotFound = errors.New(".env file not found")

// EnvFileCandidates lists the locations searched for a .env file, in order.
func EnvFileCandidates(projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, "src", ".env"),
		filepath.Join(projectRoot, "..", ".env"),
	}
}

// LoadEnvFile loads the first .env found under projectRoot and returns its path.
// Variables already present in the process environment win.
func LoadEnvFile(projectRoot string) (string, error) {
	for _, candidate := range EnvFileCandidates(projectRoot) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", ErrEnvFileNotFound
}
