package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpmnchain/compiler/internal/bpmn"
)

func sampleGraph() *bpmn.Graph {
	return &bpmn.Graph{
		Participants: []bpmn.Participant{
			{ID: "P1", DisplayName: "Buyer", ProcessID: "proc1"},
			{ID: "P2", DisplayName: "Seller", ProcessID: "proc2"},
		},
		Elements: []bpmn.FlowElement{
			{ID: "Start1", Kind: bpmn.KindStartEvent, ContainingProcessID: "proc1"},
			{ID: "Task1", Kind: bpmn.KindTask, ContainingProcessID: "proc1"},
			{ID: "GW1", Kind: bpmn.KindGateway, ContainingProcessID: "proc2"},
			{ID: "Orphan", Kind: bpmn.KindTask, ContainingProcessID: "procX"},
		},
		SequenceFlows: []bpmn.SequenceFlow{
			{ID: "sf1", SourceID: "Start1", TargetID: "Task1"},
			{ID: "sf2", SourceID: "Task1", TargetID: "GW1"},
			{ID: "sf3", SourceID: "GW1", TargetID: "Task1", Name: "Yes"},
			{ID: "sf4", SourceID: "GW1", TargetID: "Start1", Name: "No"},
		},
		MessageFlows: []bpmn.MessageFlow{
			{ID: "mf1", SourceID: "Task1", TargetID: "Orphan"},
		},
	}
}

func TestBuildProcessToParticipant(t *testing.T) {
	g := sampleGraph()
	p2p, warnings := BuildProcessToParticipant(g)

	assert.Equal(t, "Buyer", p2p["proc1"])
	assert.Equal(t, "Seller", p2p["proc2"])
	assert.Empty(t, warnings)
}

func TestBuildProcessToParticipant_DuplicateProcessOwnerWarns(t *testing.T) {
	g := &bpmn.Graph{Participants: []bpmn.Participant{
		{ID: "P1", DisplayName: "A", ProcessID: "shared"},
		{ID: "P2", DisplayName: "B", ProcessID: "shared"},
	}}
	p2p, warnings := BuildProcessToParticipant(g)

	assert.Equal(t, "A", p2p["shared"])
	assert.Len(t, warnings, 1)
}

func TestDependenciesOf(t *testing.T) {
	g := sampleGraph()
	deps := DependenciesOf("Task1", g)
	assert.ElementsMatch(t, []string{"Start1", "GW1"}, deps)
}

func TestDependenciesOf_IgnoresMessageFlows(t *testing.T) {
	g := sampleGraph()
	deps := DependenciesOf("Orphan", g)
	assert.Empty(t, deps)
}

func TestSuccessorsOf_SplitsSequenceAndMessage(t *testing.T) {
	g := sampleGraph()
	seq, msg := SuccessorsOf("Task1", g)
	assert.Equal(t, []string{"GW1"}, seq)
	assert.Equal(t, []string{"Orphan"}, msg)
}

func TestBranchTargets_CaseInsensitiveLabels(t *testing.T) {
	g := sampleGraph()
	yes, no := BranchTargets("GW1", g)
	assert.Equal(t, "Task1", yes)
	assert.Equal(t, "Start1", no)
}

func TestBranchTargets_NoLabeledFlows(t *testing.T) {
	g := &bpmn.Graph{SequenceFlows: []bpmn.SequenceFlow{
		{SourceID: "GW1", TargetID: "X", Name: "unlabeled"},
	}}
	yes, no := BranchTargets("GW1", g)
	assert.Empty(t, yes)
	assert.Empty(t, no)
}

func TestFindParticipantForElement(t *testing.T) {
	g := sampleGraph()
	p2p, _ := BuildProcessToParticipant(g)

	assert.Equal(t, "Buyer", FindParticipantForElement("Task1", g, p2p))
	assert.Equal(t, "UnknownParticipant", FindParticipantForElement("Orphan", g, p2p))
	assert.Equal(t, "UnknownParticipant", FindParticipantForElement("does-not-exist", g, p2p))
}
