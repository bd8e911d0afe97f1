package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeConstructor emits the deployment-time initialization in a fixed
// order: participant addresses, start-event arming, explicit disabling of
// every other non-timer element, timer arming, and gateway record
// population.
func writeConstructor(b *strings.Builder, u *compileunit.Unit) {
	fmt.Fprintf(b, "    constructor() {\n")

	for _, name := range u.ParticipantOrder {
		fmt.Fprintf(b, "        participantAddresses[%q] = %s;\n", name, u.ParticipantAddresses[name])
	}
	fmt.Fprintf(b, "\n")

	fmt.Fprintf(b, "        elementStates[%q] = ElementState.ENABLED;\n\n", u.StartEvent.ID)

	for _, t := range u.Tasks {
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.DISABLED;\n", t.ID)
	}
	for _, g := range u.Gateways {
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.DISABLED;\n", g.ID)
	}
	for _, e := range u.IntermediateEvents {
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.DISABLED;\n", e.ID)
	}
	for _, id := range u.EndEventIDs {
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.DISABLED;\n", id)
	}
	if len(u.Tasks)+len(u.Gateways)+len(u.IntermediateEvents)+len(u.EndEventIDs) > 0 {
		fmt.Fprintf(b, "\n")
	}

	for _, t := range u.Timers {
		fmt.Fprintf(b, "        blockLimits[%q] = block.number + %d;\n", t.ID, t.DurationBlocks)
		fmt.Fprintf(b, "        elementStates[%q] = ElementState.ENABLED;\n", t.ID)
		fmt.Fprintf(b, "        emit TimerScheduled(%q, block.number + %d);\n\n", t.ID, t.DurationBlocks)
	}

	for _, gw := range u.Gateways {
		fmt.Fprintf(b, "        {\n")
		fmt.Fprintf(b, "            string[] memory deps = new string[](%d);\n", len(gw.DependencyIDs))
		for i, id := range gw.DependencyIDs {
			fmt.Fprintf(b, "            deps[%d] = %q;\n", i, id)
		}
		fmt.Fprintf(b, "            gateways[%q] = GatewayData({\n", gw.ID)
		fmt.Fprintf(b, "                owningParticipant: %q,\n", gw.OwningParticipant)
		fmt.Fprintf(b, "                dependencyIds: deps,\n")
		fmt.Fprintf(b, "                yesTargetId: %q,\n", gw.YesTargetID)
		fmt.Fprintf(b, "                noTargetId: %q\n", gw.NoTargetID)
		fmt.Fprintf(b, "            });\n")
		fmt.Fprintf(b, "        }\n")
	}

	fmt.Fprintf(b, "    }\n\n")
}
