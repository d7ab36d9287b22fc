package session

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/flowcov/flowcov/bpmn"
	"github.com/flowcov/flowcov/internal/config"
	"github.com/flowcov/flowcov/internal/coverage"
	"github.com/flowcov/flowcov/internal/eventlog"
	"github.com/flowcov/flowcov/internal/logging"
	"github.com/flowcov/flowcov/internal/model"
)

var logger = logging.AppLogger().WithFields(log.Fields{"component": "session-runner"})

// Run deploys the session's models and replays each recorded test through a
// fresh collector, which is returned for reporting. Aborted tests leave their
// window open, exactly as a crashed test body would.
func Run(session Session, cfg config.CoverageConfig) (*coverage.Collector, error) {
	registry := model.NewRegistry()
	for _, ref := range session.Models {
		definitions, err := bpmn.ParseFile(ref.File)
		if err != nil {
			return nil, err
		}
		for _, process := range definitions.Processes {
			registry.Deploy(model.FromProcess(process))
			logger.Debugf("deployed model '%s' from %s", process.ID, ref.File)
		}
	}

	eventLog := eventlog.NewLog()
	collector := coverage.NewCollector(eventLog, registry, cfg.ExcludedModels(), cfg.Verbose())

	for _, test := range session.Tests {
		err := collector.BeginTest(test.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to replay test '%s'", test.Name)
		}

		for _, record := range test.Events {
			eventLog.Append(eventlog.Kind(record.Kind), record.Model, record.Element)
		}

		if test.Aborted {
			logger.Warnf("test '%s' aborted, its coverage will not be folded", test.Name)
			continue
		}

		err = collector.EndTest(test.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to replay test '%s'", test.Name)
		}
	}

	return collector, nil
}
