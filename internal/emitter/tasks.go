package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeTaskOperations emits one guarded operation per task.
func writeTaskOperations(b *strings.Builder, u *compileunit.Unit, names map[string]string) {
	for _, t := range u.Tasks {
		writeGuardedNodeOperation(b, u, t, names[t.ID], "Task not enabled", "Only %s can trigger this task",
			"Dependency not completed", "At least one dependency must be completed")
	}
}

// writeIntermediateEventOperations emits one guarded operation per
// intermediate catch event, identical in shape to a task operation, with
// the user-visible error prefixes changed.
func writeIntermediateEventOperations(b *strings.Builder, u *compileunit.Unit, names map[string]string) {
	for _, e := range u.IntermediateEvents {
		writeGuardedNodeOperation(b, u, e, names[e.ID], "Event not enabled", "Only %s can trigger this event",
			"Dependency not completed", "At least one dependency must be completed")
	}
}

func writeGuardedNodeOperation(b *strings.Builder, u *compileunit.Unit, node compileunit.NodeMeta, opName, notEnabledMsg, callerMsgFmt, singleDepMsg, multiDepMsg string) {
	fmt.Fprintf(b, "    function %s() external nonReentrant whenNotPaused {\n", opName)
	fmt.Fprintf(b, "        require(elementStates[%q] == ElementState.ENABLED, %q);\n", node.ID, notEnabledMsg)
	if node.OwningParticipant != "UnknownParticipant" {
		fmt.Fprintf(b, "        require(msg.sender == participantAddresses[%q], %q);\n",
			node.OwningParticipant, fmt.Sprintf(callerMsgFmt, node.OwningParticipant))
	}
	writeDisjunctiveDependencyGuard(b, node.DependencyIDs, singleDepMsg, multiDepMsg)

	fmt.Fprintf(b, "\n        elementStates[%q] = ElementState.DONE;\n", node.ID)
	fmt.Fprintf(b, "        _recordAudit(%q);\n", node.ID)
	fmt.Fprintf(b, "        emit TaskCompleted(%q);\n", node.ID)
	writeSuccessorArming(b, u, node.ID)
	fmt.Fprintf(b, "    }\n\n")
}
