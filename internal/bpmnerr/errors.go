// Package bpmnerr defines the typed error taxonomy raised across the
// compiler pipeline, so callers can errors.As/errors.Is instead of matching
// on message text.
package bpmnerr

import (
	"errors"
	"fmt"
)

// InvalidContractName is returned when the user-supplied contract name
// fails the identifier grammar.
type InvalidContractName struct {
	Name string
}

func (e *InvalidContractName) Error() string {
	return fmt.Sprintf("invalid contract name %q: must match [A-Za-z_][A-Za-z0-9_]*", e.Name)
}

// InvalidAddress is returned when a participant's address literal fails the
// 0x + 40 hex digit grammar.
type InvalidAddress struct {
	Participant string
	Address     string
}

func (e *InvalidAddress) Error() string {
	return fmt.Sprintf("invalid address %q for participant %q: must match 0x[0-9a-fA-F]{40}", e.Address, e.Participant)
}

// ModelInvalid is returned when the parsed diagram fails a structural
// invariant (no start event, no end event, a flow with a dangling endpoint).
type ModelInvalid struct {
	Reason string
}

func (e *ModelInvalid) Error() string {
	return fmt.Sprintf("invalid BPMN model: %s", e.Reason)
}

// NameCollision is returned when two elements sanitize to the same operation
// identifier.
type NameCollision struct {
	First  string
	Second string
}

func (e *NameCollision) Error() string {
	return fmt.Sprintf("sanitized operation name collision between %q and %q", e.First, e.Second)
}

// Non-fatal sentinel kinds: these are folded into the analysis report rather
// than aborting the pipeline. They carry no element-specific data, so plain
// sentinel errors (wrapped with context via fmt.Errorf("...: %w", ...)) are
// enough for errors.Is checks at the call site.
var (
	ErrAnalyzerUnavailable = errors.New("analyzer binary not available")
	ErrAnalyzerNonZero     = errors.New("analyzer exited with non-zero status")
	ErrAnalyzerTimeout     = errors.New("analyzer timed out")
	ErrLintIOError         = errors.New("lint pass could not read emitted source")
)

// UnknownParticipant is not an error type in the Go sense - it is a
// warning, not a fatal condition - but modeling it as a value makes it easy
// to collect and report uniformly alongside genuine errors.
type UnknownParticipant struct {
	ElementID string
}

func (e *UnknownParticipant) Error() string {
	return fmt.Sprintf("element %q has no resolvable owning participant", e.ElementID)
}
