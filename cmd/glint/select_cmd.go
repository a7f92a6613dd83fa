package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/glint/internal/log"
	"github.com/raphi011/glint/internal/output"
	"github.com/raphi011/glint/prompt"
)

func newSelectCmd() *cobra.Command {
	var (
		message  string
		cursor   int
		hint     string
		warning  string
		filter   string
		disabled []int
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "select [choices...]",
		Short: "Pick one of the given choices",
		Args:  cobra.MinimumNArgs(1),
		Long: `Show a select prompt over the given choices and print the picked
one to stdout.

The prompt renders on stderr, so the result can be captured:

  branch=$(glint select -m "Branch?" main develop feature)`,
		Example: `  glint select -m "Environment?" dev staging prod
  glint select --filter sta dev staging prod   # fuzzy-filter choices first
  glint select --disabled 2 dev staging prod   # third choice not selectable
  glint select --copy one two three            # copy result to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			titles := args
			if filter != "" {
				titles = filterChoices(filter, titles)
				if len(titles) == 0 {
					return fmt.Errorf("no choice matches filter %q", filter)
				}
				logger.Debugf("filter %q kept %d of %d choices", filter, len(titles), len(args))
			}

			choices := prompt.Choices(titles...)
			if err := markDisabled(choices, disabled); err != nil {
				return err
			}

			// Unset flags fall back to the config file; empty config
			// values leave the prompt's built-in defaults in place.
			if hint == "" {
				hint = cfg.Select.Hint
			}
			if warning == "" {
				warning = cfg.Select.Warning
			}

			sel, err := prompt.NewSelectWithOptions(message, choices, prompt.SelectOptions[string]{
				Cursor:  cursor,
				Hint:    hint,
				Warning: warning,
				Writer:  promptOut,
			})
			if err != nil {
				return err
			}

			value, err := sel.Run()
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return errors.New("aborted")
				}
				return err
			}

			if copyFlag {
				if err := clipboard.WriteAll(value); err != nil {
					logger.Printf("Warning: copy to clipboard failed: %v\n", err)
				}
			}

			output.FromContext(cmd.Context()).Result(value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "Select an option", "Prompt message")
	cmd.Flags().IntVarP(&cursor, "cursor", "c", 0, "Initially highlighted choice (zero-based)")
	cmd.Flags().StringVar(&hint, "hint", "", "Help text shown next to the message")
	cmd.Flags().StringVar(&warning, "warning", "", "Text shown when submitting a disabled choice")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter choices before prompting")
	cmd.Flags().IntSliceVar(&disabled, "disabled", nil, "Zero-based indexes of choices that cannot be picked")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the picked value to the clipboard")

	return cmd
}

// filterChoices keeps the titles matching the fuzzy query, ranked by
// match quality.
func filterChoices(query string, titles []string) []string {
	matches := fuzzy.Find(query, titles)
	kept := make([]string, len(matches))
	for i, m := range matches {
		kept[i] = titles[m.Index]
	}
	return kept
}

// markDisabled flags the given choice indexes as not selectable.
func markDisabled(choices []prompt.Choice[string], indexes []int) error {
	for _, i := range indexes {
		if i < 0 || i >= len(choices) {
			return fmt.Errorf("disabled index %d out of range (have %d choices)", i, len(choices))
		}
		choices[i].Disabled = true
	}
	return nil
}
