package util

// MultiError collects multiple errors so that all validation failures can be
// reported at once instead of one per run.
type MultiError struct {
	Errors []error
}

// Collect appends the specified error unless it is nil.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty returns true if no errors have been collected.
func (m *MultiError) Empty() bool {
	return len(m.Errors) == 0
}
