package emitter

import (
	"fmt"
	"strings"
)

// writeAuditHelper emits the private helper every task/event/gateway
// operation calls exactly once, after its state transition and before its
// completion event.
func writeAuditHelper(b *strings.Builder) {
	fmt.Fprintf(b, "    function _recordAudit(string memory id) private {\n")
	fmt.Fprintf(b, "        auditLog.push(AuditRecord({elementId: id, caller: msg.sender, timestamp: block.timestamp}));\n")
	fmt.Fprintf(b, "    }\n\n")
}
