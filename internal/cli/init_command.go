package cli

import (
	"fmt"

	"diskfarm/internal/config"
	"diskfarm/internal/shared"

	"github.com/spf13/cobra"
)

type InitOptions struct {
	Force bool // Overwrite an existing file
}

func NewInitCommand(globalOptions *GlobalOptions) *cobra.Command {
	initOptions := &InitOptions{}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration",
		Long: `Writes a configuration with two disk farms and one server to the config path.
Edit it afterwards and verify it with 'diskfarm check'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(globalOptions, initOptions)
		},
	}

	initCmd.Flags().BoolVar(&initOptions.Force, "force", false, "Overwrite the file if it already exists.")

	return initCmd
}

func runInit(globalOptions *GlobalOptions, initOptions *InitOptions) error {
	path := globalOptions.CfgFilePath

	exists, err := globalOptions.Store.Exists(path)
	if err != nil {
		return err
	}
	if exists && !initOptions.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", shared.ErrorFileExists, path)
	}

	if err := config.SaveTo(globalOptions.Store, path, config.Example()); err != nil {
		return fmt.Errorf("trying to save the config: %w", err)
	}

	globalOptions.Logger.WithField("path", path).Info("Wrote example configuration")
	return nil
}
