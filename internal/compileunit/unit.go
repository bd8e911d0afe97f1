// Package compileunit derives the emission-ready CompilationUnit from a
// decoded bpmn.Graph, a contract name, and a participant address map.
// Building a Unit is where every fatal validation happens; once a Unit
// exists, the emitter can assume it is well-formed.
package compileunit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bpmnchain/compiler/internal/bpmn"
	"github.com/bpmnchain/compiler/internal/bpmnerr"
	"github.com/bpmnchain/compiler/internal/semantic"
	"github.com/bpmnchain/compiler/internal/validate"
)

// blocksPerDay is the compiler's fixed conversion from calendar days to
// block-number deltas: one block is assumed to take ~12 seconds, so a day is
// 7200 blocks.
const blocksPerDay = 7200

// defaultTimerDurationBlocks is the fallback duration (30 days) applied to
// any timer whose payload is missing or not of the supported "PnD" form.
const defaultTimerDurationBlocks = 30 * blocksPerDay

// NodeMeta describes a task, intermediate catch event, or start event: the
// information the emitter needs to generate its guarded operation.
type NodeMeta struct {
	ID                string
	Name              string
	OwningParticipant string
	DependencyIDs     []string
}

// TimerMeta describes a timer event definition.
type TimerMeta struct {
	ID             string
	Name           string
	DurationBlocks int64
	// FallbackApplied is true when the payload could not be parsed as "PnD"
	// and the 30-day default was used instead. Callers should surface this
	// as a warning rather than applying it silently.
	FallbackApplied bool
}

// GatewayMeta describes an exclusive gateway: its owning participant,
// dependency set, and yes/no branch targets.
type GatewayMeta struct {
	ID                string
	Name              string
	OwningParticipant string
	DependencyIDs     []string
	YesTargetID       string
	NoTargetID        string
}

// Unit is the emission-ready compiled model the emitter consumes.
type Unit struct {
	ContractName         string
	Graph                *bpmn.Graph
	ParticipantOrder     []string // display names, source-document order
	ParticipantAddresses map[string]string
	ProcessToParticipant map[string]string

	StartEvent         NodeMeta
	EndEventIDs        []string
	Tasks              []NodeMeta
	IntermediateEvents []NodeMeta
	Timers             []TimerMeta
	Gateways           []GatewayMeta

	// Warnings accumulates non-fatal issues: UnknownParticipant, duplicate
	// process ownership, timer fallback.
	Warnings []string
}

// Build validates the graph and address map and derives a Unit, or returns a
// fatal *bpmnerr error. Non-fatal issues are recorded in Unit.Warnings
// rather than returned as errors.
func Build(g *bpmn.Graph, contractName string, addresses map[string]string) (*Unit, error) {
	if err := validate.ContractName(contractName); err != nil {
		return nil, err
	}
	for _, p := range g.Participants {
		addr, ok := addresses[p.DisplayName]
		if !ok {
			return nil, &bpmnerr.InvalidAddress{Participant: p.DisplayName, Address: ""}
		}
		if err := validate.Address(p.DisplayName, addr); err != nil {
			return nil, err
		}
	}

	starts := g.ElementsByKind(bpmn.KindStartEvent)
	if len(starts) != 1 {
		return nil, &bpmnerr.ModelInvalid{Reason: fmt.Sprintf("expected exactly one start event, found %d", len(starts))}
	}
	if !g.HasEndEvent() {
		return nil, &bpmnerr.ModelInvalid{Reason: "no end event present"}
	}
	resolves := func(id string) bool { _, ok := g.ElementByID(id); return ok }
	for _, f := range g.SequenceFlows {
		if !resolves(f.SourceID) || !resolves(f.TargetID) {
			return nil, &bpmnerr.ModelInvalid{Reason: fmt.Sprintf("sequence flow %q has an endpoint that is not an element of the diagram", f.ID)}
		}
	}
	for _, f := range g.MessageFlows {
		if !resolves(f.SourceID) || !resolves(f.TargetID) {
			return nil, &bpmnerr.ModelInvalid{Reason: fmt.Sprintf("message flow %q has an endpoint that is not an element of the diagram", f.ID)}
		}
	}

	p2p, warnings := semantic.BuildProcessToParticipant(g)

	u := &Unit{
		ContractName:         contractName,
		Graph:                g,
		ParticipantAddresses: addresses,
		ProcessToParticipant: p2p,
		Warnings:             warnings,
	}
	for _, p := range g.Participants {
		u.ParticipantOrder = append(u.ParticipantOrder, p.DisplayName)
	}

	u.StartEvent = u.nodeMeta(starts[0])
	for _, e := range g.ElementsByKind(bpmn.KindEndEvent) {
		u.EndEventIDs = append(u.EndEventIDs, e.ID)
	}
	for _, t := range g.ElementsByKind(bpmn.KindTask) {
		u.Tasks = append(u.Tasks, u.nodeMeta(t))
	}
	for _, e := range g.ElementsByKind(bpmn.KindIntermediateCatchEvent) {
		u.IntermediateEvents = append(u.IntermediateEvents, u.nodeMeta(e))
	}
	for _, t := range g.ElementsByKind(bpmn.KindTimerEventDefinition) {
		tm := u.timerMeta(t)
		if tm.FallbackApplied {
			u.Warnings = append(u.Warnings, fmt.Sprintf("timer %q payload %q is not of the PnD form; using the 30-day default", t.ID, t.RawTimerPayload))
		}
		u.Timers = append(u.Timers, tm)
	}
	for _, gw := range g.ElementsByKind(bpmn.KindGateway) {
		u.Gateways = append(u.Gateways, u.gatewayMeta(gw))
	}

	for _, el := range g.Elements {
		owner := semantic.FindParticipantForElement(el.ID, g, p2p)
		if owner == "UnknownParticipant" {
			u.Warnings = append(u.Warnings, (&bpmnerr.UnknownParticipant{ElementID: el.ID}).Error())
		}
	}

	return u, nil
}

func (u *Unit) nodeMeta(el bpmn.FlowElement) NodeMeta {
	return NodeMeta{
		ID:                el.ID,
		Name:              el.Name,
		OwningParticipant: semantic.FindParticipantForElement(el.ID, u.Graph, u.ProcessToParticipant),
		DependencyIDs:     semantic.DependenciesOf(el.ID, u.Graph),
	}
}

func (u *Unit) gatewayMeta(el bpmn.FlowElement) GatewayMeta {
	yes, no := semantic.BranchTargets(el.ID, u.Graph)
	return GatewayMeta{
		ID:                el.ID,
		Name:              el.Name,
		OwningParticipant: semantic.FindParticipantForElement(el.ID, u.Graph, u.ProcessToParticipant),
		DependencyIDs:     semantic.DependenciesOf(el.ID, u.Graph),
		YesTargetID:       yes,
		NoTargetID:        no,
	}
}

func (u *Unit) timerMeta(el bpmn.FlowElement) TimerMeta {
	blocks, ok := parsePnD(el.RawTimerPayload)
	if !ok {
		return TimerMeta{ID: el.ID, Name: el.Name, DurationBlocks: defaultTimerDurationBlocks, FallbackApplied: true}
	}
	return TimerMeta{ID: el.ID, Name: el.Name, DurationBlocks: blocks}
}

// parsePnD parses an ISO-8601-flavored "P<n>D" payload into a block count.
// Only the day form is supported; anything else (including empty strings,
// timeDate/timeCycle payloads, or hour/week/month forms) is reported as
// unparsed so the caller applies the default.
func parsePnD(payload string) (int64, bool) {
	payload = strings.TrimSpace(payload)
	if len(payload) < 3 || payload[0] != 'P' || payload[len(payload)-1] != 'D' {
		return 0, false
	}
	n, err := strconv.ParseInt(payload[1:len(payload)-1], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * blocksPerDay, true
}

// SuccessorsOf exposes semantic.SuccessorsOf against this unit's graph, for
// emitter use when arming successors from start/task/timer operations.
func (u *Unit) SuccessorsOf(elementID string) (sequenceTargets, messageTargets []string) {
	return semantic.SuccessorsOf(elementID, u.Graph)
}

// IsTimer reports whether elementID names a timer event definition, and
// returns its metadata when so. Used by successor-arming code in the
// emitter to decide whether a newly enabled target also needs a deadline
// recomputed and a TimerScheduled event emitted.
func (u *Unit) IsTimer(elementID string) (TimerMeta, bool) {
	for _, t := range u.Timers {
		if t.ID == elementID {
			return t, true
		}
	}
	return TimerMeta{}, false
}
