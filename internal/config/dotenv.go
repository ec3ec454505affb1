package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotenv loads variables from a .env file in the working directory into
// the process environment. Variables that are already set are left untouched,
// so real environment variables always beat .env values.
//
// A missing .env file is not an error.
func loadDotenv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
