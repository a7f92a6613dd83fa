package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/glint/internal/config"
	"github.com/raphi011/glint/internal/log"
	"github.com/raphi011/glint/internal/output"
	"github.com/raphi011/glint/styles"
)

var (
	// Global flags
	verbose bool
	noColor bool

	// Shared state injected into commands
	cfg *config.Config

	// promptOut is where prompts and spinners render. Stdout stays
	// clean for results so $(glint select ...) works in scripts.
	promptOut io.Writer = os.Stderr
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Interactive select prompts and spinners for the shell",
	Long: `glint renders keyboard-driven select prompts and animated spinners
in the terminal.

Prompts and spinners draw on stderr; the chosen value or action result
goes to stdout, so glint composes with shell substitution and pipes.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			styles.Init(styles.ThemeConfig{Name: "none"})
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config and apply the theme before any rendering happens
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg
	styles.Init(cfg.Styles())

	// Downgrade colors to what the terminal actually supports
	promptOut = colorprofile.NewWriter(os.Stderr, os.Environ())

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger to stderr for diagnostics, printer to stdout for results
	logger := log.New(os.Stderr, verbose)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show terminal detection and render diagnostics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable all colors")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newFramesCmd())
	rootCmd.AddCommand(newConfigCmd())
}
