package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeStartOperation emits the single zero-argument start-event operation.
// The caller guard is omitted when the owning participant resolves to the
// UnknownParticipant sentinel.
func writeStartOperation(b *strings.Builder, u *compileunit.Unit) {
	fmt.Fprintf(b, "    function startEvent() external nonReentrant whenNotPaused {\n")
	fmt.Fprintf(b, "        require(elementStates[%q] == ElementState.ENABLED, \"Start event not enabled\");\n", u.StartEvent.ID)
	if u.StartEvent.OwningParticipant != "UnknownParticipant" {
		fmt.Fprintf(b, "        require(msg.sender == participantAddresses[%q], \"Only %s can trigger this event\");\n",
			u.StartEvent.OwningParticipant, u.StartEvent.OwningParticipant)
	}
	fmt.Fprintf(b, "\n        elementStates[%q] = ElementState.DONE;\n", u.StartEvent.ID)
	fmt.Fprintf(b, "        _recordAudit(%q);\n", u.StartEvent.ID)
	fmt.Fprintf(b, "        emit TaskCompleted(%q);\n", u.StartEvent.ID)
	writeSuccessorArming(b, u, u.StartEvent.ID)
	fmt.Fprintf(b, "    }\n\n")
}
