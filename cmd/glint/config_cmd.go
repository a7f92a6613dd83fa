package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/glint/internal/config"
	"github.com/raphi011/glint/internal/output"
	"github.com/raphi011/glint/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage glint configuration.

Config file: ~/.config/glint/config.toml
The GLINT_CONFIG environment variable overrides the location.`,
		Example: `  glint config init    # Create default config
  glint config show    # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println("Created", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			out.Printf("theme:    %s\n", cfg.Theme.Name)
			out.Printf("nerdfont: %v\n", cfg.Theme.Nerdfont)
			out.Printf("frames:   %s\n", cfg.Spinner.Frames)
			out.Printf("themes:   %s\n", strings.Join(styles.ThemeNames(), ", "))
			return nil
		},
	}
}
