package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/dyluth/ut/internal/config"
	"github.com/dyluth/ut/internal/printer"
	"github.com/dyluth/ut/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a commented default config file.

The file is written to --config, else $UT_CONFIG, else
$XDG_CONFIG_HOME/ut/config.yml.

Use --force to overwrite an existing file.`,
		Args: cobra.NoArgs,
		// The existing config may be the broken one being replaced
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root, force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return initCmd
}

func runInit(cmd *cobra.Command, root *rootOptions, force bool) error {
	path, err := root.targetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	if err := scaffold.Initialize(path, force); err != nil {
		if errors.Is(err, scaffold.ErrExists) {
			return printer.ErrorWithContext(
				cmd.ErrOrStderr(),
				"config already exists",
				"A config file is already present.",
				map[string]string{"Config": path},
				[]string{"Use 'ut init --force' to overwrite it (this replaces your settings)"},
			)
		}
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess(cmd.OutOrStdout(), path)
	return nil
}

// targetConfigPath is the file init writes: --config, else UT_CONFIG, else the default path.
func (o *rootOptions) targetConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	if p := os.Getenv(config.EnvConfig); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}
