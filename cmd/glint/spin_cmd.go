package main

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/glint/internal/log"
	"github.com/raphi011/glint/internal/output"
	"github.com/raphi011/glint/spinner"
)

func newSpinCmd() *cobra.Command {
	var (
		text       string
		frames     string
		intervalMs int
		styleName  string
		successMsg string
		failureMsg string
	)

	cmd := &cobra.Command{
		Use:   "spin -- command [args...]",
		Short: "Run a command behind a spinner",
		Args:  cobra.MinimumNArgs(1),
		Long: `Run a command while showing a spinner on stderr.

The spinner is replaced by a success or failure line when the command
exits. The command's stdout is passed through to stdout afterwards, so
results stay capturable.`,
		Example: `  glint spin -t "Fetching" -- git fetch --all
  glint spin --frames moon -- sleep 3
  glint spin --success "Done" --failure "Nope" -- make build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			name := frames
			if name == "" {
				name = cfg.Spinner.Frames
			}
			interval := time.Duration(intervalMs) * time.Millisecond
			if intervalMs == 0 {
				interval = time.Duration(cfg.Spinner.IntervalMs) * time.Millisecond
			}
			logger.Debugf("frames %q interval %s", name, interval)

			// The success line defaults to the spinner text so command
			// stdout never leaks into the stderr rendering.
			if successMsg == "" {
				successMsg = spinText(text, args)
			}

			var stdout bytes.Buffer
			action := func() (any, error) {
				c := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
				c.Stdout = &stdout
				if err := c.Run(); err != nil {
					return nil, fmt.Errorf("%s: %w", args[0], err)
				}
				return strings.TrimRight(stdout.String(), "\n"), nil
			}

			s, err := spinner.Run(action, spinner.Options{
				Text:     spinText(text, args),
				Frames:   name,
				Interval: interval,
				Style:    spinner.Named(styleName),
				Writer:   promptOut,
			}, spinner.Messages{
				Success: successMsg,
				Failure: failureMsg,
			})
			if err != nil {
				return err
			}

			res := s.LastResult()
			if res.Err != nil {
				return errors.New("command failed")
			}
			if out, ok := res.Value.(string); ok && out != "" {
				output.FromContext(cmd.Context()).Println(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Spinner text (defaults to the command line)")
	cmd.Flags().StringVar(&frames, "frames", "", "Named frame set, list with \"glint frames\"")
	cmd.Flags().IntVar(&intervalMs, "interval", 0, "Milliseconds between frames (0 = frame set default)")
	cmd.Flags().StringVar(&styleName, "style", "", "Frame color: primary, accent, success, error, warning, info or muted")
	cmd.Flags().StringVar(&successMsg, "success", "", "Line shown on success (defaults to the spinner text)")
	cmd.Flags().StringVar(&failureMsg, "failure", "", "Line shown on failure (defaults to the error)")

	return cmd
}

// spinText picks the spinner text: the explicit flag, or the command
// line being run.
func spinText(flag string, args []string) string {
	if flag != "" {
		return flag
	}
	return strings.Join(args, " ")
}
