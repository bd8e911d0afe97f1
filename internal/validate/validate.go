// Package validate holds the two input-validation primitives the compiler
// runs before any output is written: contract name grammar and participant
// address grammar.
package validate

import (
	"regexp"

	"github.com/bpmnchain/compiler/internal/bpmnerr"
)

var (
	contractNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	addressPattern      = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// ContractName validates a target contract name against the identifier
// grammar. An empty or non-conforming name fails.
func ContractName(name string) error {
	if !contractNamePattern.MatchString(name) {
		return &bpmnerr.InvalidContractName{Name: name}
	}
	return nil
}

// Address validates a 20-byte address literal for the named participant.
func Address(participant, address string) error {
	if !addressPattern.MatchString(address) {
		return &bpmnerr.InvalidAddress{Participant: participant, Address: address}
	}
	return nil
}
