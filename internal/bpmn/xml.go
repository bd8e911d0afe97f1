package bpmn

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/bpmnchain/compiler/internal/bpmnerr"
)

// The raw XML structs below mirror the subset of the BPMN 2.0 schema this
// compiler understands. They exist only to drive encoding/xml unmarshalling;
// ParseDiagram converts them into the normalized Graph the rest of the
// compiler consumes.

type xmlDefinitions struct {
	XMLName       xml.Name         `xml:"definitions"`
	Collaboration xmlCollaboration `xml:"collaboration"`
	Processes     []xmlProcess     `xml:"process"`
}

type xmlCollaboration struct {
	Participants []xmlParticipant `xml:"participant"`
	MessageFlows []xmlMessageFlow `xml:"messageFlow"`
}

type xmlParticipant struct {
	ID         string `xml:"id,attr"`
	Name       string `xml:"name,attr"`
	ProcessRef string `xml:"processRef,attr"`
}

type xmlMessageFlow struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	SourceID string `xml:"sourceRef,attr"`
	TargetID string `xml:"targetRef,attr"`
}

type xmlProcess struct {
	ID                      string                      `xml:"id,attr"`
	StartEvents             []xmlNamedElement           `xml:"startEvent"`
	EndEvents               []xmlNamedElement           `xml:"endEvent"`
	Tasks                   []xmlNamedElement           `xml:"task"`
	UserTasks               []xmlNamedElement           `xml:"userTask"`
	ServiceTasks            []xmlNamedElement           `xml:"serviceTask"`
	ScriptTasks             []xmlNamedElement           `xml:"scriptTask"`
	ManualTasks             []xmlNamedElement           `xml:"manualTask"`
	ExclusiveGateways       []xmlNamedElement           `xml:"exclusiveGateway"`
	IntermediateCatchEvents []xmlIntermediateCatchEvent `xml:"intermediateCatchEvent"`
	SequenceFlows           []xmlSequenceFlow           `xml:"sequenceFlow"`
}

type xmlNamedElement struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlIntermediateCatchEvent struct {
	ID            string            `xml:"id,attr"`
	Name          string            `xml:"name,attr"`
	TimerEventDef *xmlTimerEventDef `xml:"timerEventDefinition"`
}

type xmlTimerEventDef struct {
	ID           string  `xml:"id,attr"`
	TimeDuration *string `xml:"timeDuration"`
	TimeDate     *string `xml:"timeDate"`
	TimeCycle    *string `xml:"timeCycle"`
}

type xmlSequenceFlow struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	SourceID string `xml:"sourceRef,attr"`
	TargetID string `xml:"targetRef,attr"`
}

// ParseDiagram decodes a BPMN 2.0 XML document into a normalized Graph.
// Unsupported element types are simply absent from the raw structs above
// and so are dropped silently; this function performs no semantic
// validation beyond what is needed to build a well-formed Graph; structural
// checks (start/end event presence) belong to the caller.
func ParseDiagram(r io.Reader) (*Graph, error) {
	var defs xmlDefinitions
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&defs); err != nil {
		return nil, &bpmnerr.ModelInvalid{Reason: fmt.Sprintf("decoding BPMN XML: %v", err)}
	}

	g := &Graph{}

	for _, p := range defs.Collaboration.Participants {
		g.Participants = append(g.Participants, Participant{
			ID:          p.ID,
			DisplayName: displayName(p.Name, p.ID),
			ProcessID:   p.ProcessRef,
		})
	}

	for _, mf := range defs.Collaboration.MessageFlows {
		g.MessageFlows = append(g.MessageFlows, MessageFlow{
			ID:       mf.ID,
			SourceID: mf.SourceID,
			TargetID: mf.TargetID,
			Name:     mf.Name,
		})
	}

	for _, proc := range defs.Processes {
		g.Processes = append(g.Processes, Process{ID: proc.ID})
		appendNamed(g, proc.ID, KindStartEvent, proc.StartEvents)
		appendNamed(g, proc.ID, KindEndEvent, proc.EndEvents)
		appendNamed(g, proc.ID, KindTask, proc.Tasks)
		appendNamed(g, proc.ID, KindTask, proc.UserTasks)
		appendNamed(g, proc.ID, KindTask, proc.ServiceTasks)
		appendNamed(g, proc.ID, KindTask, proc.ScriptTasks)
		appendNamed(g, proc.ID, KindTask, proc.ManualTasks)
		appendNamed(g, proc.ID, KindGateway, proc.ExclusiveGateways)

		for _, ice := range proc.IntermediateCatchEvents {
			if ice.TimerEventDef != nil {
				g.Elements = append(g.Elements, FlowElement{
					ID:                  ice.ID,
					Name:                displayName(ice.Name, ice.ID),
					Kind:                KindTimerEventDefinition,
					ContainingProcessID: proc.ID,
					RawTimerPayload:     timerPayload(ice.TimerEventDef),
					OwnerID:             ice.ID,
				})
				continue
			}
			g.Elements = append(g.Elements, FlowElement{
				ID:                  ice.ID,
				Name:                displayName(ice.Name, ice.ID),
				Kind:                KindIntermediateCatchEvent,
				ContainingProcessID: proc.ID,
			})
		}

		for _, sf := range proc.SequenceFlows {
			g.SequenceFlows = append(g.SequenceFlows, SequenceFlow{
				ID:       sf.ID,
				SourceID: sf.SourceID,
				TargetID: sf.TargetID,
				Name:     sf.Name,
			})
		}
	}

	return g, nil
}

func appendNamed(g *Graph, processID string, kind ElementKind, elems []xmlNamedElement) {
	for _, e := range elems {
		g.Elements = append(g.Elements, FlowElement{
			ID:                  e.ID,
			Name:                displayName(e.Name, e.ID),
			Kind:                kind,
			ContainingProcessID: processID,
		})
	}
}

// timerPayload extracts the textual duration payload a timer definition
// carries. Only timeDuration is understood; timeDate and timeCycle resolve
// to the empty string, which compileunit treats as "unsupported" and falls
// back to the default duration.
func timerPayload(def *xmlTimerEventDef) string {
	if def.TimeDuration == nil {
		return ""
	}
	return strings.TrimSpace(*def.TimeDuration)
}

func displayName(name, id string) string {
	if strings.TrimSpace(name) == "" {
		return id
	}
	return name
}
