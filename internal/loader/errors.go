package loader

import "errors"

// Fatal model errors (spec §7 "Model errors"). Wrapped with %w and
// component/connection context by the loader; callers that only care
// about the error class can branch with errors.Is.
var (
	// ErrMalformedModel covers structurally unparseable descriptions:
	// missing <system>, missing required fields on a component or
	// connection record, and similar.
	ErrMalformedModel = errors.New("loader: malformed model description")

	// ErrUnresolvedPin is returned when a gate pin cannot be bound to
	// exactly one signal (spec §4.B step 3): the gate has no input pin
	// at all, it has no output pin, or one of its pins has no non-self
	// neighbor. A gap in the input pins ends the pin-scan and is not
	// itself an error.
	ErrUnresolvedPin = errors.New("loader: unresolved gate pin")

	// ErrMultiplyDriven is returned when more than one gate claims to
	// drive the same output signal (spec §3 invariant: "every
	// non-input signal is driven by exactly one gate output").
	ErrMultiplyDriven = errors.New("loader: signal driven by more than one gate")

	// ErrCycle is returned when Kahn's algorithm terminates with a
	// non-empty remaining in-degree set (spec §4.B step 4).
	ErrCycle = errors.New("loader: gate topology contains a cycle")
)
