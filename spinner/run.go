package spinner

import (
	"errors"
	"fmt"
)

// ErrInvalidAction reports a [Run] action that is neither a
// zero-argument function nor an in-flight computation. This is a
// caller-contract violation, not a runtime failure of the animation.
var ErrInvalidAction = errors.New("spinner: action must be a func() (any, error) or a channel of Result")

// Messages overrides the persisted line for either outcome of a
// wrapped action. Empty fields fall back to the stringified result or
// the error text.
type Messages struct {
	Success string
	Failure string
}

// Run wraps an asynchronous action with a spinner. The action is
// either a zero-argument function, invoked on a fresh goroutine, or an
// already in-flight computation delivering a single [Result] on a
// channel. The spinner starts before the action is awaited, so the
// animation runs while the work proceeds.
//
// On success the persisted line is the success override or the
// stringified value; on failure it is the failure override or the
// error text. The action's failure is never returned as an error:
// it is converted into the persisted failure line and cached in
// [Spinner.LastResult]. Run only returns an error for a malformed
// configuration or an invalid action.
func Run(action any, opts Options, msgs Messages) (*Spinner, error) {
	await, err := resolveAction(action)
	if err != nil {
		return nil, err
	}

	s, err := NewWithOptions(opts)
	if err != nil {
		return nil, err
	}

	s.Start()
	res := await()
	s.setLast(res)

	if res.Err != nil {
		text := msgs.Failure
		if text == "" {
			text = res.Err.Error()
		}
		s.Fail(text)
		return s, nil
	}

	text := msgs.Success
	if text == "" {
		text = fmt.Sprint(res.Value)
	}
	s.Succeed(text)
	return s, nil
}

// resolveAction validates the action and returns a blocking await
// function for it. Validation happens before the spinner starts so a
// contract violation fails synchronously with no output.
func resolveAction(action any) (func() Result, error) {
	switch a := action.(type) {
	case func() (any, error):
		return func() Result {
			ch := make(chan Result, 1)
			go func() {
				v, err := a()
				ch <- Result{Value: v, Err: err}
			}()
			return <-ch
		}, nil
	case <-chan Result:
		return func() Result { return <-a }, nil
	case chan Result:
		return func() Result { return <-a }, nil
	default:
		return nil, ErrInvalidAction
	}
}
