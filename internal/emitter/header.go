package emitter

import (
	"fmt"
	"strings"

	"github.com/bpmnchain/compiler/internal/compileunit"
)

// writeHeader emits the license marker, pragma, imports, docblock, contract
// declaration, lifecycle enum, storage mappings, audit layout, events, and
// gateway record layout.
func writeHeader(b *strings.Builder, u *compileunit.Unit, runID string) {
	fmt.Fprintf(b, "// SPDX-License-Identifier: MIT\n")
	fmt.Fprintf(b, "pragma solidity ^0.8.19;\n\n")
	fmt.Fprintf(b, "import \"@openzeppelin/contracts/security/ReentrancyGuard.sol\";\n")
	fmt.Fprintf(b, "import \"@openzeppelin/contracts/access/Ownable.sol\";\n")
	fmt.Fprintf(b, "import \"@openzeppelin/contracts/security/Pausable.sol\";\n\n")
	fmt.Fprintf(b, "/// @title %s\n", u.ContractName)
	fmt.Fprintf(b, "/// @notice Generated on-chain state machine compiled from a BPMN collaboration diagram.\n")
	fmt.Fprintf(b, "/// @dev Compilation run %s\n", runID)
	fmt.Fprintf(b, "contract %s is ReentrancyGuard, Ownable, Pausable {\n", u.ContractName)

	fmt.Fprintf(b, "    enum ElementState { DISABLED, ENABLED, DONE }\n\n")
	fmt.Fprintf(b, "    mapping(string => ElementState) public elementStates;\n")
	fmt.Fprintf(b, "    mapping(string => address) public participantAddresses;\n")
	fmt.Fprintf(b, "    mapping(string => uint256) public blockLimits;\n\n")

	fmt.Fprintf(b, "    struct GatewayData {\n")
	fmt.Fprintf(b, "        string owningParticipant;\n")
	fmt.Fprintf(b, "        string[] dependencyIds;\n")
	fmt.Fprintf(b, "        string yesTargetId;\n")
	fmt.Fprintf(b, "        string noTargetId;\n")
	fmt.Fprintf(b, "    }\n")
	fmt.Fprintf(b, "    mapping(string => GatewayData) public gateways;\n\n")

	fmt.Fprintf(b, "    struct AuditRecord {\n")
	fmt.Fprintf(b, "        string elementId;\n")
	fmt.Fprintf(b, "        address caller;\n")
	fmt.Fprintf(b, "        uint256 timestamp;\n")
	fmt.Fprintf(b, "    }\n")
	fmt.Fprintf(b, "    AuditRecord[] public auditLog;\n\n")

	fmt.Fprintf(b, "    event TaskCompleted(string id);\n")
	fmt.Fprintf(b, "    event TimerScheduled(string id, uint256 deadline);\n\n")
}
