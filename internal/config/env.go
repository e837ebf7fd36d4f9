package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DotEnvFile = ".env"

// LoadDotEnv copies the variables in path into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}
