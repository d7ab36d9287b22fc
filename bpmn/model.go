package bpmn

import "encoding/xml"

// Definitions is the top level struct of a BPMN 2.0 definitions file.
type Definitions struct {
	XMLName   xml.Name  `xml:"definitions"`
	ID        string    `xml:"id,attr"`
	Processes []Process `xml:"process"`
}

// Process depicts a single process definition within a definitions file.
type Process struct {
	ID                      string         `xml:"id,attr"`
	Name                    string         `xml:"name,attr"`
	StartEvents             []FlowNode     `xml:"startEvent"`
	EndEvents               []FlowNode     `xml:"endEvent"`
	Tasks                   []FlowNode     `xml:"task"`
	UserTasks               []FlowNode     `xml:"userTask"`
	ServiceTasks            []FlowNode     `xml:"serviceTask"`
	ScriptTasks             []FlowNode     `xml:"scriptTask"`
	ExclusiveGateways       []FlowNode     `xml:"exclusiveGateway"`
	ParallelGateways        []FlowNode     `xml:"parallelGateway"`
	IntermediateCatchEvents []FlowNode     `xml:"intermediateCatchEvent"`
	SequenceFlows           []SequenceFlow `xml:"sequenceFlow"`
}

// FlowNode depicts a node of the process graph (event, task or gateway).
type FlowNode struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// SequenceFlow depicts a transition between two flow nodes.
type SequenceFlow struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	SourceRef string `xml:"sourceRef,attr"`
	TargetRef string `xml:"targetRef,attr"`
}

// ElementIDs returns the ids of all coverable elements of the process, flow
// nodes first and sequence flows last, each group in document order.
func (p Process) ElementIDs() []string {
	groups := [][]FlowNode{
		p.StartEvents,
		p.Tasks,
		p.UserTasks,
		p.ServiceTasks,
		p.ScriptTasks,
		p.ExclusiveGateways,
		p.ParallelGateways,
		p.IntermediateCatchEvents,
		p.EndEvents,
	}

	ids := make([]string, 0)
	for _, group := range groups {
		for _, node := range group {
			ids = append(ids, node.ID)
		}
	}
	for _, flow := range p.SequenceFlows {
		ids = append(ids, flow.ID)
	}
	return ids
}
