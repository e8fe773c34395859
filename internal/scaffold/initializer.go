package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dyluth/ut/internal/config"
	"github.com/dyluth/ut/internal/printer"
)

//go:embed templates/*
var templatesFS embed.FS

// Initialize writes the default config file to path, creating its directory.
// An existing file is only replaced when force is true.
func Initialize(path string, force bool) error {
	if !force {
		if err := CheckExisting(path); err != nil {
			return err
		}
	}

	content, err := templatesFS.ReadFile("templates/config.yml.tmpl")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return validateCreatedFile(path)
}

// validateCreatedFile checks the written file loads as a valid config
func validateCreatedFile(path string) error {
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not a valid config: %w", path, err)
	}
	return nil
}

// PrintSuccess prints the success message with the created file
func PrintSuccess(w io.Writer, path string) {
	printer.Success(w, "Created %s\n", path)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Set offset and precision to the defaults you want")
	fmt.Fprintln(w, "  2. Run 'ut -v generate' to see which settings are in effect")
}
