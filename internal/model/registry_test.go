package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcov/flowcov/bpmn"
)

func TestElementsOfDeployedModel(t *testing.T) {
	registry := NewRegistry()
	registry.Deploy(Definition{Key: "order", Elements: []string{"start", "task1", "end"}})

	elements, err := registry.ElementsOf("order")
	require.NoError(t, err)
	assert.Len(t, elements, 3)
	assert.Contains(t, elements, "task1")

	// deterministic: a second lookup yields the same set
	again, err := registry.ElementsOf("order")
	require.NoError(t, err)
	assert.Equal(t, elements, again)
}

func TestElementsOfUnknownModel(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.ElementsOf("never-deployed")
	assert.Error(t, err)
	assert.Equal(t, ErrUnknownModel, errors.Cause(err))
}

func TestDeployCopiesElementSlice(t *testing.T) {
	registry := NewRegistry()
	elements := []string{"start"}
	registry.Deploy(Definition{Key: "order", Elements: elements})

	elements[0] = "tampered"

	set, err := registry.ElementsOf("order")
	require.NoError(t, err)
	assert.Contains(t, set, "start")
}

func TestFromProcess(t *testing.T) {
	process := bpmn.Process{
		ID:            "order",
		StartEvents:   []bpmn.FlowNode{{ID: "start"}},
		Tasks:         []bpmn.FlowNode{{ID: "task1"}},
		EndEvents:     []bpmn.FlowNode{{ID: "end"}},
		SequenceFlows: []bpmn.SequenceFlow{{ID: "flow1", SourceRef: "start", TargetRef: "task1"}},
	}

	definition := FromProcess(process)

	assert.Equal(t, "order", definition.Key)
	assert.Equal(t, []string{"start", "task1", "end", "flow1"}, definition.Elements)
}
