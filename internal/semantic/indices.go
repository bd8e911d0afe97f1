// Package semantic derives three indices, process-to-participant,
// dependency, and branch, as pure functions over a decoded bpmn.Graph. None
// of these functions mutate the graph or hold state across calls; they
// exist so the same index logic is unit-testable independent of both
// ingestion and emission.
package semantic

import "github.com/bpmnchain/compiler/internal/bpmn"

const unknownParticipant = "UnknownParticipant"

// BuildProcessToParticipant maps each contained process id to the display
// name of the pool that contains it. Participants without a ProcessID are
// skipped. When two participants reference the same process, the first
// occurrence in source-document order wins and a warning is returned for
// every subsequent duplicate.
func BuildProcessToParticipant(g *bpmn.Graph) (map[string]string, []string) {
	p2p := make(map[string]string)
	var warnings []string
	for _, p := range g.Participants {
		if p.ProcessID == "" {
			continue
		}
		if _, exists := p2p[p.ProcessID]; exists {
			warnings = append(warnings, "process "+p.ProcessID+" is claimed by multiple participants; using first occurrence")
			continue
		}
		p2p[p.ProcessID] = p.DisplayName
	}
	return p2p, warnings
}

// DependenciesOf returns the source ids of every sequence flow whose target
// is elementID, in source-document order. Message flows are not counted as
// dependencies.
func DependenciesOf(elementID string, g *bpmn.Graph) []string {
	var deps []string
	for _, f := range g.SequenceFlows {
		if f.TargetID == elementID {
			deps = append(deps, f.SourceID)
		}
	}
	return deps
}

// SuccessorsOf returns the targets of every sequence flow and every message
// flow whose source is elementID, in source-document order, reported
// separately so the emitter can apply sequence- and message-flow arming
// uniformly: for every outgoing sequence or message flow, the target
// becomes ENABLED.
func SuccessorsOf(elementID string, g *bpmn.Graph) (sequenceTargets, messageTargets []string) {
	for _, f := range g.SequenceFlows {
		if f.SourceID == elementID {
			sequenceTargets = append(sequenceTargets, f.TargetID)
		}
	}
	for _, f := range g.MessageFlows {
		if f.SourceID == elementID {
			messageTargets = append(messageTargets, f.TargetID)
		}
	}
	return sequenceTargets, messageTargets
}

// BranchTargets returns the yes/no successors of a gateway, resolved by the
// case-insensitive flow label "Yes"/"No". Either may be empty; a gateway
// with no flow labeled one way simply has no target on that branch.
func BranchTargets(gatewayID string, g *bpmn.Graph) (yesTargetID, noTargetID string) {
	for _, f := range g.SequenceFlows {
		if f.SourceID != gatewayID {
			continue
		}
		switch toLowerASCII(f.Name) {
		case "yes":
			yesTargetID = f.TargetID
		case "no":
			noTargetID = f.TargetID
		}
	}
	return yesTargetID, noTargetID
}

// FindParticipantForElement walks the element's containing process and
// looks up the owning pool's display name, falling back to the
// "UnknownParticipant" sentinel when the process has no registered owner.
func FindParticipantForElement(elementID string, g *bpmn.Graph, p2p map[string]string) string {
	el, ok := g.ElementByID(elementID)
	if !ok {
		return unknownParticipant
	}
	if name, ok := p2p[el.ContainingProcessID]; ok {
		return name
	}
	return unknownParticipant
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
