// Package emitter produces the contract source text from a compileunit.Unit.
// Every Emit call over the same Unit and run id produces byte-identical
// output: no step here iterates a Go map when order matters. The run id is
// written into the header, so calls with different run ids differ there.
package emitter

import (
	"strings"

	"github.com/bpmnchain/compiler/internal/bpmnerr"
	"github.com/bpmnchain/compiler/internal/compileunit"
)

const startEventOpName = "startEvent"

// Emit concatenates the fixed sections of a generated contract into a single
// source string. runID is embedded as a traceability comment in the header.
func Emit(u *compileunit.Unit, runID string) (string, error) {
	names, err := operationNames(u)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, u, runID)
	writeConstructor(&b, u)
	writeAdmin(&b)
	writeAuditHelper(&b)
	writeStartOperation(&b, u)
	writeTaskOperations(&b, u, names)
	writeIntermediateEventOperations(&b, u, names)
	writeTimerOperations(&b, u, names)
	writeGatewayDispatch(&b, u)
	b.WriteString("}\n")

	return b.String(), nil
}

// operationNames sanitizes every task, intermediate-event, and timer name
// into its emitted operation identifier and fails with NameCollision the
// first time two distinct elements collide.
func operationNames(u *compileunit.Unit) (map[string]string, error) {
	names := make(map[string]string)
	seen := make(map[string]string) // sanitized name -> original element id

	claim := func(elementID, sanitized string) error {
		if existingID, ok := seen[sanitized]; ok && existingID != elementID {
			return &bpmnerr.NameCollision{First: existingID, Second: elementID}
		}
		seen[sanitized] = elementID
		names[elementID] = sanitized
		return nil
	}

	if err := claim(u.StartEvent.ID, startEventOpName); err != nil {
		return nil, err
	}
	for _, t := range u.Tasks {
		if err := claim(t.ID, Sanitize(t.Name)); err != nil {
			return nil, err
		}
	}
	for _, e := range u.IntermediateEvents {
		if err := claim(e.ID, Sanitize(e.Name)); err != nil {
			return nil, err
		}
	}
	for _, t := range u.Timers {
		sanitized := Sanitize(t.Name)
		opName := "trigger" + strings.ToUpper(sanitized[:1]) + sanitized[1:]
		if err := claim(t.ID, opName); err != nil {
			return nil, err
		}
	}

	return names, nil
}
