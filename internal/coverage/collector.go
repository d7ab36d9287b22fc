// Package coverage implements the structural coverage engine: it observes
// which model elements were traversed during test execution and aggregates
// per-test covered sets into suite level results.
package coverage

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/flowcov/flowcov/internal/eventlog"
	"github.com/flowcov/flowcov/internal/logging"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "coverage-collector"})

	// ErrDuplicateWindow flags a BeginTest while the same test is already recording.
	ErrDuplicateWindow = errors.New("duplicate test window")

	// ErrNoActiveWindow flags an EndTest without a prior BeginTest.
	ErrNoActiveWindow = errors.New("no active test window")
)

// Cursor is the read-only view over the engine's execution event log.
type Cursor interface {
	// CurrentTail returns the highest position in the log, or
	// eventlog.TailEmpty for an empty log.
	CurrentTail() eventlog.Position

	// Since returns all events with a position strictly greater than the
	// specified one, in ascending order.
	Since(position eventlog.Position) []eventlog.Event
}

// ElementIndex resolves a deployed model key to its coverable element set.
type ElementIndex interface {
	ElementsOf(key string) (map[string]struct{}, error)
}

// testWindow is the per-test accumulation window. It only exists while the
// test body runs; at EndTest it is folded into the method results and removed.
type testWindow struct {
	watermark eventlog.Position
}

// methodResult is the folded outcome of one test method: its covered marks
// and the set of model keys it touched.
type methodResult struct {
	covered map[Mark]struct{}
	touched map[string]struct{}
}

// Collector owns all coverage state for one test class run. It is driven
// strictly sequentially by the test lifecycle, one instance per suite, and is
// discarded at suite end.
type Collector struct {
	cursor   Cursor
	index    ElementIndex
	excluded map[string]struct{}
	verbose  bool

	windows   map[string]*testWindow
	methods   map[string]*methodResult
	foldOrder []string
}

// NewCollector creates a collector reading events through the specified
// cursor and resolving element universes through the specified index.
// Elements of excluded models never enter a covered set nor any ratio.
func NewCollector(cursor Cursor, index ElementIndex, excludedModels []string, verbose bool) *Collector {
	excluded := make(map[string]struct{}, len(excludedModels))
	for _, key := range excludedModels {
		excluded[key] = struct{}{}
	}
	return &Collector{
		cursor:   cursor,
		index:    index,
		excluded: excluded,
		verbose:  verbose,
		windows:  map[string]*testWindow{},
		methods:  map[string]*methodResult{},
	}
}

// BeginTest opens the accumulation window for the specified test method and
// captures the current log tail as its watermark. It must be called exactly
// once before the test body runs; calling it again while the same method is
// still recording fails with ErrDuplicateWindow.
func (c *Collector) BeginTest(methodName string) error {
	if _, ok := c.windows[methodName]; ok {
		return errors.Wrapf(ErrDuplicateWindow, "test '%s' is already recording", methodName)
	}

	c.windows[methodName] = &testWindow{watermark: c.cursor.CurrentTail()}
	logger.Debugf("recording coverage for test '%s'", methodName)
	return nil
}

// EndTest closes the accumulation window for the specified test method: all
// events past its watermark are mapped to coverage marks, marks of excluded
// models are dropped and the rest is folded into the suite aggregate. A
// repeated run of the same method name replaces its previous result. Calling
// EndTest without a prior BeginTest fails with ErrNoActiveWindow.
func (c *Collector) EndTest(methodName string) error {
	window, ok := c.windows[methodName]
	if !ok {
		return errors.Wrapf(ErrNoActiveWindow, "test '%s' has no recording window", methodName)
	}

	covered := map[Mark]struct{}{}
	touched := map[string]struct{}{}
	for _, event := range c.cursor.Since(window.watermark) {
		mark, relevant := MapToElement(event)
		if !relevant {
			continue
		}
		if _, excludedModel := c.excluded[mark.Model]; excludedModel {
			continue
		}
		covered[mark] = struct{}{}
		touched[mark.Model] = struct{}{}
	}

	if _, seen := c.methods[methodName]; !seen {
		c.foldOrder = append(c.foldOrder, methodName)
	}
	c.methods[methodName] = &methodResult{covered: covered, touched: touched}
	delete(c.windows, methodName)

	c.logRatio(methodName)
	return nil
}

// MethodCoverage reports the coverage the most recent run of the specified
// test method achieved over the models it touched. It is idempotent and side
// effect free. Methods that never folded (test aborted before EndTest, or
// never began) have no data and yield an error.
func (c *Collector) MethodCoverage(methodName string) (Report, error) {
	result, ok := c.methods[methodName]
	if !ok {
		return Report{}, errors.Errorf("no coverage recorded for test '%s'", methodName)
	}

	universe, err := c.universeOf(result.touched)
	if err != nil {
		return Report{}, err
	}
	return newReport(result.covered, universe, result.touched), nil
}

// ClassCoverage reports the coverage all folded test methods achieved
// together. Class level coverage is only well defined if every folded test
// touched the identical set of model keys; on divergence the report carries
// the Inconsistent flag instead of a numeric ratio. Tests that aborted before
// EndTest simply do not contribute.
func (c *Collector) ClassCoverage() (Report, error) {
	if len(c.foldOrder) == 0 {
		return Report{Ratio: 1.0}, nil
	}

	reference := c.methods[c.foldOrder[0]].touched
	union := map[Mark]struct{}{}
	for _, methodName := range c.foldOrder {
		result := c.methods[methodName]
		if !equalKeySets(reference, result.touched) {
			logger.Warnf("test '%s' touched a different model set than '%s', class coverage is undefined",
				methodName, c.foldOrder[0])
			return Report{Inconsistent: true}, nil
		}
		for mark := range result.covered {
			union[mark] = struct{}{}
		}
	}

	universe, err := c.universeOf(reference)
	if err != nil {
		return Report{}, err
	}
	return newReport(union, universe, reference), nil
}

// universeOf resolves the touched model keys to the full mark universe the
// ratio denominator is computed over. Excluded models never appear in a
// touched set, so no filtering is needed here.
func (c *Collector) universeOf(models map[string]struct{}) (map[Mark]struct{}, error) {
	universe := map[Mark]struct{}{}
	for key := range models {
		elements, err := c.index.ElementsOf(key)
		if err != nil {
			return nil, err
		}
		for element := range elements {
			universe[Mark{Model: key, Element: element}] = struct{}{}
		}
	}
	return universe, nil
}

func (c *Collector) logRatio(methodName string) {
	report, err := c.MethodCoverage(methodName)
	if err != nil {
		logger.Warnf("unable to compute coverage for test '%s': %s", methodName, err)
		return
	}

	if c.verbose {
		logger.Infof("test '%s' covered %d of %d elements (%.2f)",
			methodName, len(report.Covered), len(report.Covered)+len(report.Missing), report.Ratio)
	} else {
		logger.Debugf("test '%s' covered %d of %d elements (%.2f)",
			methodName, len(report.Covered), len(report.Covered)+len(report.Missing), report.Ratio)
	}
}

func equalKeySets(a map[string]struct{}, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
