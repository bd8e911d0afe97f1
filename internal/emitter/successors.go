package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeSuccessorArming emits the local edge-rewrite every firing operation
// performs: each outgoing sequence- or message-flow target becomes ENABLED;
// a target that is itself a timer additionally has its deadline recomputed
// and a TimerScheduled event emitted. The emitter never builds a global
// ordering over these edges - each operation only rewrites its own local
// neighborhood, so cyclic graphs are never topologically sorted.
func writeSuccessorArming(b *strings.Builder, u *compileunit.Unit, elementID string) {
	seqTargets, msgTargets := u.SuccessorsOf(elementID)
	for _, targetID := range append(append([]string{}, seqTargets...), msgTargets...) {
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.ENABLED;\n", targetID)
		if timer, ok := u.IsTimer(targetID); ok {
			fmt.Fprintf(b, "        blockLimits[%q] = block.number + %d;\n", targetID, timer.DurationBlocks)
			fmt.Fprintf(b, "        emit TimerScheduled(%q, block.number + %d);\n", targetID, timer.DurationBlocks)
		}
	}
}
