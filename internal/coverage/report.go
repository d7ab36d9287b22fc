package coverage

import "sort"

// Mark is the global coordinate of one covered element: element ids are only
// unique per model, so every record carries the model key as well.
type Mark struct {
	Model   string
	Element string
}

// Report is an immutable snapshot of coverage at one point in time.
//
// When Inconsistent is true the contributing tests exercised different model
// universes, class level coverage is undefined and Ratio carries no meaning;
// callers must check the flag before reading any numeric field.
type Report struct {
	Ratio            float64
	Inconsistent     bool
	Covered          []Mark
	Missing          []Mark
	ModelsConsidered []string
}

func newReport(covered map[Mark]struct{}, universe map[Mark]struct{}, models map[string]struct{}) Report {
	coveredInUniverse := make([]Mark, 0, len(covered))
	missing := make([]Mark, 0)
	for mark := range universe {
		if _, ok := covered[mark]; ok {
			coveredInUniverse = append(coveredInUniverse, mark)
		} else {
			missing = append(missing, mark)
		}
	}
	sortMarks(coveredInUniverse)
	sortMarks(missing)

	modelKeys := make([]string, 0, len(models))
	for key := range models {
		modelKeys = append(modelKeys, key)
	}
	sort.Strings(modelKeys)

	// A model without coverable elements is vacuously fully covered.
	ratio := 1.0
	if len(universe) > 0 {
		ratio = float64(len(coveredInUniverse)) / float64(len(universe))
	}

	return Report{
		Ratio:            ratio,
		Covered:          coveredInUniverse,
		Missing:          missing,
		ModelsConsidered: modelKeys,
	}
}

func sortMarks(marks []Mark) {
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].Model != marks[j].Model {
			return marks[i].Model < marks[j].Model
		}
		return marks[i].Element < marks[j].Element
	})
}
