package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeTimerOperations emits one zero-argument trigger operation per timer.
// Timer operations enforce no caller restriction: any caller may fire the
// timer once its block deadline has passed.
func writeTimerOperations(b *strings.Builder, u *compileunit.Unit, names map[string]string) {
	for _, t := range u.Timers {
		fmt.Fprintf(b, "    function %s() external nonReentrant whenNotPaused {\n", names[t.ID])
		fmt.Fprintf(b, "        require(elementStates[%q] == ElementState.ENABLED, \"Timer not enabled\");\n", t.ID)
		fmt.Fprintf(b, "        require(block.number >= blockLimits[%q], \"Deadline not reached\");\n\n", t.ID)
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.DONE;\n", t.ID)
		fmt.Fprintf(b, "        _recordAudit(%q);\n", t.ID)
		fmt.Fprintf(b, "        emit TaskCompleted(%q);\n", t.ID)
		writeSuccessorArming(b, u, t.ID)
		fmt.Fprintf(b, "    }\n\n")
	}
}
