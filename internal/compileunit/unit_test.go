package compileunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpmnchain/compiler/internal/bpmn"
	"github.com/bpmnchain/compiler/internal/bpmnerr"
)

const validAddr = "0x1234567890123456789012345678901234567890"

func buildValidGraph() *bpmn.Graph {
	return &bpmn.Graph{
		Participants: []bpmn.Participant{{ID: "P1", DisplayName: "Buyer", ProcessID: "proc1"}},
		Elements: []bpmn.FlowElement{
			{ID: "Start1", Kind: bpmn.KindStartEvent, ContainingProcessID: "proc1"},
			{ID: "Task1", Name: "Ship Goods", Kind: bpmn.KindTask, ContainingProcessID: "proc1"},
			{ID: "End1", Kind: bpmn.KindEndEvent, ContainingProcessID: "proc1"},
			{ID: "T1", Name: "Deadline", Kind: bpmn.KindTimerEventDefinition, ContainingProcessID: "proc1", RawTimerPayload: "P3D"},
		},
		SequenceFlows: []bpmn.SequenceFlow{
			{ID: "sf1", SourceID: "Start1", TargetID: "Task1"},
			{ID: "sf2", SourceID: "Task1", TargetID: "End1"},
		},
	}
}

func TestBuild_Success(t *testing.T) {
	g := buildValidGraph()
	u, err := Build(g, "EscrowContract", map[string]string{"Buyer": validAddr})
	require.NoError(t, err)

	assert.Equal(t, "Start1", u.StartEvent.ID)
	assert.Equal(t, []string{"End1"}, u.EndEventIDs)
	require.Len(t, u.Tasks, 1)
	assert.Equal(t, "Task1", u.Tasks[0].ID)
	require.Len(t, u.Timers, 1)
	assert.Equal(t, int64(3*blocksPerDay), u.Timers[0].DurationBlocks)
	assert.False(t, u.Timers[0].FallbackApplied)
}

func TestBuild_InvalidContractName(t *testing.T) {
	g := buildValidGraph()
	_, err := Build(g, "1Bad", map[string]string{"Buyer": validAddr})

	var invalid *bpmnerr.InvalidContractName
	require.ErrorAs(t, err, &invalid)
}

func TestBuild_MissingParticipantAddress(t *testing.T) {
	g := buildValidGraph()
	_, err := Build(g, "EscrowContract", map[string]string{})

	var invalid *bpmnerr.InvalidAddress
	require.ErrorAs(t, err, &invalid)
}

func TestBuild_NoStartEvent(t *testing.T) {
	g := buildValidGraph()
	g.Elements = g.Elements[1:] // drop Start1
	_, err := Build(g, "EscrowContract", map[string]string{"Buyer": validAddr})

	var invalid *bpmnerr.ModelInvalid
	require.ErrorAs(t, err, &invalid)
}

func TestBuild_NoEndEvent(t *testing.T) {
	g := buildValidGraph()
	var withoutEnd []bpmn.FlowElement
	for _, e := range g.Elements {
		if e.Kind != bpmn.KindEndEvent {
			withoutEnd = append(withoutEnd, e)
		}
	}
	g.Elements = withoutEnd
	_, err := Build(g, "EscrowContract", map[string]string{"Buyer": validAddr})

	var invalid *bpmnerr.ModelInvalid
	require.ErrorAs(t, err, &invalid)
}

func TestBuild_UnparsableTimerFallsBackTo30Days(t *testing.T) {
	g := buildValidGraph()
	for i := range g.Elements {
		if g.Elements[i].ID == "T1" {
			g.Elements[i].RawTimerPayload = "PT5H" // unsupported hour form
		}
	}
	u, err := Build(g, "EscrowContract", map[string]string{"Buyer": validAddr})
	require.NoError(t, err)

	require.Len(t, u.Timers, 1)
	assert.Equal(t, int64(defaultTimerDurationBlocks), u.Timers[0].DurationBlocks)
	assert.True(t, u.Timers[0].FallbackApplied)
}

func TestBuild_UnknownParticipantWarns(t *testing.T) {
	g := buildValidGraph()
	g.Elements = append(g.Elements, bpmn.FlowElement{ID: "Orphan", Kind: bpmn.KindTask, ContainingProcessID: "no-such-process"})
	u, err := Build(g, "EscrowContract", map[string]string{"Buyer": validAddr})
	require.NoError(t, err)

	found := false
	for _, w := range u.Warnings {
		if w != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParsePnD(t *testing.T) {
	cases := []struct {
		payload string
		blocks  int64
		ok      bool
	}{
		{"P1D", blocksPerDay, true},
		{"P30D", 30 * blocksPerDay, true},
		{"", 0, false},
		{"P5H", 0, false},
		{"PND", 0, false},
		{"P-1D", 0, false},
	}
	for _, c := range cases {
		blocks, ok := parsePnD(c.payload)
		assert.Equal(t, c.ok, ok, c.payload)
		if c.ok {
			assert.Equal(t, c.blocks, blocks, c.payload)
		}
	}
}
