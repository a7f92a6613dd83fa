// Package prompt provides interactive terminal prompts.
//
// The central type is [Select], a keyboard-driven single-choice list
// that renders directly to a terminal stream and re-renders in place
// using cursor-control and erase sequences.
//
//	s, err := prompt.NewSelect("Pick a branch", prompt.Choices("main", "develop"))
//	if err != nil {
//		return err
//	}
//	branch, err := s.Run()
//
// Run puts the input terminal into raw mode, dispatches named key
// events to the prompt, and resolves the selected value, or
// [ErrAborted] when the user cancels.
//
// Navigation deliberately mixes two philosophies: the arrow keys stop
// hard at the list boundaries and ring the bell, while tab cycles
// with wrap-around. Disabled choices can be focused but not
// submitted; a rejected submit rings the bell and leaves the prompt
// open.
//
// Prompts render to stderr by default so stdout stays clean for
// piping the selected value.
package prompt
