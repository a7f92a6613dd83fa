package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/glint/internal/output"
	"github.com/raphi011/glint/spinner"
)

func newFramesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "List available spinner frame sets",
		Args:  cobra.NoArgs,
		Example: `  glint frames
  glint spin --frames moon -- sleep 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			for _, name := range spinner.FrameSetNames() {
				frames, _ := spinner.FrameSet(name)
				out.Printf("%-12s %s\n", name, strings.Join(frames, " "))
			}
			return nil
		},
	}
}
