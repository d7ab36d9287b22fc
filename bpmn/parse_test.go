package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	definitions, err := ParseFile("testdata/order.bpmn")
	require.NoError(t, err)

	require.Len(t, definitions.Processes, 1)
	process := definitions.Processes[0]
	assert.Equal(t, "order", process.ID)
	assert.Len(t, process.StartEvents, 1)
	assert.Len(t, process.EndEvents, 2)
	assert.Len(t, process.UserTasks, 1)
	assert.Len(t, process.ServiceTasks, 1)
	assert.Len(t, process.ExclusiveGateways, 1)
	assert.Len(t, process.SequenceFlows, 5)
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse([]byte("<definitions><process></definitions>"))
	assert.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.bpmn")
	assert.Error(t, err)
}

func TestElementIDs(t *testing.T) {
	definitions, err := ParseFile("testdata/order.bpmn")
	require.NoError(t, err)

	ids := definitions.Processes[0].ElementIDs()

	assert.Equal(t, []string{
		"orderReceived",
		"reviewOrder",
		"shipOrder",
		"orderApproved",
		"orderShipped",
		"orderRejected",
		"flowReview",
		"flowDecide",
		"flowShip",
		"flowReject",
		"flowDone",
	}, ids)
}
