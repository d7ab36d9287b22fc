package bpmn

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"
)

// Parse unmarshals raw BPMN 2.0 XML into Definitions.
func Parse(data []byte) (Definitions, error) {
	definitions := Definitions{}
	err := xml.Unmarshal(data, &definitions)
	if err != nil {
		return Definitions{}, errors.Wrap(err, "unable to parse BPMN definitions")
	}
	return definitions, nil
}

// ParseFile reads and parses the BPMN 2.0 file at the specified path.
func ParseFile(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definitions{}, errors.Wrapf(err, "unable to read BPMN file %s", path)
	}
	return Parse(data)
}
