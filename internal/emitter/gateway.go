package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeGatewayDispatch emits the single polymorphic gatewayAction operation
// covering every exclusive gateway. Gateway metadata lives in a tagged
// record addressed by id; dispatch is a data-driven lookup, not one
// operation per gateway, so the contract surface stays O(1) in gateway
// count.
func writeGatewayDispatch(b *strings.Builder, u *compileunit.Unit) {
	fmt.Fprintf(b, "    function gatewayAction(string memory gatewayId, bool condition) external nonReentrant whenNotPaused {\n")
	fmt.Fprintf(b, "        require(elementStates[gatewayId] == ElementState.ENABLED, \"Gateway not enabled\");\n")
	fmt.Fprintf(b, "        GatewayData memory gw = gateways[gatewayId];\n")
	fmt.Fprintf(b, "        require(msg.sender == participantAddresses[gw.owningParticipant], \"Only the owning participant can trigger this gateway\");\n")
	fmt.Fprintf(b, "        for (uint256 i = 0; i < gw.dependencyIds.length; i++) {\n")
	fmt.Fprintf(b, "            require(elementStates[gw.dependencyIds[i]] == ElementState.DONE, \"Dependency not completed\");\n")
	fmt.Fprintf(b, "        }\n\n")

	fmt.Fprintf(b, "        elementStates[gatewayId] = ElementState.DONE;\n")
	fmt.Fprintf(b, "        _recordAudit(gatewayId);\n")
	fmt.Fprintf(b, "        emit TaskCompleted(gatewayId);\n\n")

	fmt.Fprintf(b, "        if (condition) {\n")
	fmt.Fprintf(b, "            if (bytes(gw.yesTargetId).length > 0) {\n")
	fmt.Fprintf(b, "                elementStates[gw.yesTargetId] = ElementState.ENABLED;\n")
	fmt.Fprintf(b, "            }\n")
	fmt.Fprintf(b, "        } else {\n")
	fmt.Fprintf(b, "            if (bytes(gw.noTargetId).length > 0) {\n")
	fmt.Fprintf(b, "                elementStates[gw.noTargetId] = ElementState.ENABLED;\n")
	fmt.Fprintf(b, "            }\n")
	fmt.Fprintf(b, "        }\n")
	fmt.Fprintf(b, "    }\n\n")
}
