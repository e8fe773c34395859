package scaffold

import (
	"errors"
	"fmt"
	"os"
)

// ErrExists is returned when a config file is already present
var ErrExists = errors.New("config file already exists")

// CheckExisting returns an error wrapping ErrExists if path already exists
func CheckExisting(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	return nil
}
