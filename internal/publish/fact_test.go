package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowcov/flowcov/internal/coverage"
)

func TestNewFact(t *testing.T) {
	report := coverage.Report{
		Ratio: 0.75,
		Covered: []coverage.Mark{
			{Model: "order", Element: "start"},
			{Model: "order", Element: "task1"},
			{Model: "order", Element: "end"},
		},
		Missing:          []coverage.Mark{{Model: "order", Element: "flow1"}},
		ModelsConsidered: []string{"order"},
	}

	fact := NewFact(report, "OrderProcessTest")

	assert.Equal(t, "flowcov-flowcov.coverage-OrderProcessTest", fact.Name)
	assert.Equal(t, FactTypeCoverage, fact.FactType)
	assert.Equal(t, []string{"order"}, fact.Models)
	assert.Len(t, fact.Measurements, 3)
	assert.Contains(t, fact.Measurements, Measurement{Name: "Elements-Coverage", MeasurementType: MeasurementCount, MeasurementValue: 3})
	assert.Contains(t, fact.Measurements, Measurement{Name: "Elements-Missed", MeasurementType: MeasurementCount, MeasurementValue: 1})
	assert.Contains(t, fact.Measurements, Measurement{Name: "Elements-Total", MeasurementType: MeasurementCount, MeasurementValue: 4})
}

func TestNewFactInconsistentDeployment(t *testing.T) {
	report := coverage.Report{Inconsistent: true}

	fact := NewFact(report, "OrderProcessTest")

	assert.Contains(t, fact.Tags, InconsistentDeploymentTag)
	assert.Empty(t, fact.Measurements)
	assert.Empty(t, fact.Models)
}
