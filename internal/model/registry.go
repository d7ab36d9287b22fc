// Package model holds the read-only view over deployed process definitions
// that coverage ratios are computed against.
package model

import (
	"github.com/pkg/errors"

	"github.com/flowcov/flowcov/bpmn"
)

// ErrUnknownModel is returned when a model key was never deployed in this run.
var ErrUnknownModel = errors.New("unknown model")

// Definition is an immutable snapshot of a deployed process definition:
// its stable key and the ordered ids of its coverable elements.
type Definition struct {
	Key      string
	Elements []string
}

// FromProcess converts a parsed BPMN process into a deployable Definition.
func FromProcess(process bpmn.Process) Definition {
	return Definition{Key: process.ID, Elements: process.ElementIDs()}
}

// Registry indexes the definitions deployed during one run. It never mutates
// a definition, it only answers element-set lookups.
type Registry struct {
	definitions map[string][]string
}

// NewRegistry creates an empty definition registry.
func NewRegistry() *Registry {
	return &Registry{definitions: map[string][]string{}}
}

// Deploy registers the specified definition. Re-deploying a key replaces the
// previous snapshot.
func (r *Registry) Deploy(definition Definition) {
	elements := make([]string, len(definition.Elements))
	copy(elements, definition.Elements)
	r.definitions[definition.Key] = elements
}

// Keys returns the keys of all deployed definitions.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.definitions))
	for key := range r.definitions {
		keys = append(keys, key)
	}
	return keys
}

// ElementsOf returns the set of coverable element ids declared by the model
// with the specified key. Calling it twice with the same key yields the same
// set. It fails with ErrUnknownModel for keys never deployed in this run.
func (r *Registry) ElementsOf(key string) (map[string]struct{}, error) {
	elements, ok := r.definitions[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "model '%s' was not deployed in this run", key)
	}

	set := make(map[string]struct{}, len(elements))
	for _, element := range elements {
		set[element] = struct{}{}
	}
	return set, nil
}
