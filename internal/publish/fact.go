// Package publish turns coverage reports into facts and ships them to an
// external sink, for example a CI dashboard collector.
package publish

import (
	"fmt"

	"github.com/flowcov/flowcov/internal/coverage"
	"github.com/flowcov/flowcov/internal/logging"
)

const (
	// FactTypeCoverage classifies facts produced by this app.
	FactTypeCoverage = "flowcov.coverage"

	// MeasurementCount marks measurements that carry plain element counts.
	MeasurementCount = "count"

	measurementCoverage = "Coverage"
	measurementMissed   = "Missed"
	measurementTotal    = "Total"

	// InconsistentDeploymentTag marks facts whose class coverage was
	// undefined because the tests exercised different model sets.
	InconsistentDeploymentTag = "inconsistent-deployment"
)

// Measurement is one data point of a fact.
type Measurement struct {
	Name             string `json:"name"`
	MeasurementType  string `json:"measurementType"`
	MeasurementValue int    `json:"measurementValue"`
}

// Fact is the publishable outcome of one suite run.
type Fact struct {
	Name         string        `json:"name"`
	FactType     string        `json:"factType"`
	Tags         []string      `json:"tags"`
	Models       []string      `json:"models,omitempty"`
	Measurements []Measurement `json:"measurements,omitempty"`
}

// NewFact builds the coverage fact for the specified suite. An inconsistent
// report yields a fact without measurements, tagged so that the sink can
// render the condition instead of a bogus ratio.
func NewFact(report coverage.Report, suite string) Fact {
	name := fmt.Sprintf("%s-%s-%s", logging.AppName, FactTypeCoverage, suite)
	fact := Fact{
		Name:     name,
		FactType: FactTypeCoverage,
		Tags:     []string{logging.AppName},
	}

	if report.Inconsistent {
		fact.Tags = append(fact.Tags, InconsistentDeploymentTag)
		return fact
	}

	covered := len(report.Covered)
	missed := len(report.Missing)
	fact.Models = report.ModelsConsidered
	fact.Measurements = []Measurement{
		createMeasurement(measurementCoverage, covered),
		createMeasurement(measurementMissed, missed),
		createMeasurement(measurementTotal, covered+missed),
	}
	return fact
}

func createMeasurement(measurement string, value int) Measurement {
	return Measurement{
		Name:             fmt.Sprintf("Elements-%s", measurement),
		MeasurementType:  MeasurementCount,
		MeasurementValue: value,
	}
}
