// Package session loads recorded suite runs and replays them through the
// coverage collector.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Session is one recorded run of a test class: the models deployed for it and
// the events the engine emitted per test method.
type Session struct {
	Suite  string     `yaml:"suite"`
	Models []ModelRef `yaml:"models"`
	Tests  []TestRun  `yaml:"tests"`
}

// ModelRef points at a BPMN definitions file deployed for the session.
type ModelRef struct {
	File string `yaml:"file"`
}

// TestRun is the recorded event stream of one test method. An aborted test
// failed before its window could close; its events stay in the log but its
// coverage is never folded.
type TestRun struct {
	Name    string        `yaml:"name"`
	Aborted bool          `yaml:"aborted,omitempty"`
	Events  []EventRecord `yaml:"events"`
}

// EventRecord is one execution event as recorded in the session file.
type EventRecord struct {
	Kind    string `yaml:"kind"`
	Model   string `yaml:"model"`
	Element string `yaml:"element"`
}

// Load reads a session from the specified location, either a local file path
// or an http(s) URL. Model file references of local sessions are resolved
// relative to the session file's directory.
func Load(location string) (Session, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return RetrieveSession(location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return Session{}, errors.Wrapf(err, "unable to read session file %s", location)
	}

	session, err := parseSession(data)
	if err != nil {
		return Session{}, err
	}

	baseDir := filepath.Dir(location)
	for i, ref := range session.Models {
		if !filepath.IsAbs(ref.File) {
			session.Models[i].File = filepath.Join(baseDir, ref.File)
		}
	}
	return session, nil
}

func parseSession(data []byte) (Session, error) {
	session := Session{}
	err := yaml.Unmarshal(data, &session)
	if err != nil {
		return Session{}, errors.Wrap(err, "unable to parse session")
	}
	return session, nil
}
