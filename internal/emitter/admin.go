package emitter

import (
	"fmt"
	"strings"
)

// writeAdmin emits the four owner-gated administrative operations. Only the
// owner can re-arm a DONE element back to DISABLED; no other path clears
// DONE.
func writeAdmin(b *strings.Builder) {
	fmt.Fprintf(b, "    function updateParticipantAddress(string memory name, address newAddress) external onlyOwner {\n")
	fmt.Fprintf(b, "        require(newAddress != address(0), \"Zero address not allowed\");\n")
	fmt.Fprintf(b, "        participantAddresses[name] = newAddress;\n")
	fmt.Fprintf(b, "    }\n\n")

	fmt.Fprintf(b, "    function pause() external onlyOwner {\n")
	fmt.Fprintf(b, "        _pause();\n")
	fmt.Fprintf(b, "    }\n\n")

	fmt.Fprintf(b, "    function unpause() external onlyOwner {\n")
	fmt.Fprintf(b, "        _unpause();\n")
	fmt.Fprintf(b, "    }\n\n")

	fmt.Fprintf(b, "    function resetElementState(string memory id) external onlyOwner {\n")
	fmt.Fprintf(b, "        elementStates[id] = ElementState.DISABLED;\n")
	fmt.Fprintf(b, "    }\n\n")
}
