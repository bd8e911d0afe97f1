package emitter

import (
	"fmt"
	"strings"
)

// writeDisjunctiveDependencyGuard emits the OR-join dependency guard shape:
// no guard for zero dependencies, a single equality check for exactly one,
// and a disjunctive OR across all of them for two or more. AND-joins are
// deliberately not expressible here - they must be modeled as explicit
// converging gateways in the diagram.
func writeDisjunctiveDependencyGuard(b *strings.Builder, deps []string, singleMsg, multiMsg string) {
	switch len(deps) {
	case 0:
		return
	case 1:
		fmt.Fprintf(b, "        require(elementStates[%q] == ElementState.DONE, %q);\n", deps[0], singleMsg)
	default:
		var cond strings.Builder
		for i, d := range deps {
			if i > 0 {
				cond.WriteString(" || ")
			}
			fmt.Fprintf(&cond, "elementStates[%q] == ElementState.DONE", d)
		}
		fmt.Fprintf(b, "        require(%s, %q);\n", cond.String(), multiMsg)
	}
}
