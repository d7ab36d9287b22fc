package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/flowcov/flowcov/internal/config"
	"github.com/flowcov/flowcov/internal/logging"
	"github.com/flowcov/flowcov/internal/publish"
	"github.com/flowcov/flowcov/internal/session"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "main"})
)

func init() {
	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)
}

func main() {
	// Init configuration
	config, err := config.NewConfiguration()
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("starting %s with config: %s", logging.AppName, config)

	// configure the Logger
	logging.SetLevel(config.Level())

	recordedSession, err := session.Load(config.SessionFile())
	if err != nil {
		logger.Fatal(err)
	}

	collector, err := session.Run(recordedSession, config)
	if err != nil {
		logger.Fatal(err)
	}

	for _, test := range recordedSession.Tests {
		if test.Aborted {
			continue
		}
		report, err := collector.MethodCoverage(test.Name)
		if err != nil {
			logger.Errorf("unable to compute coverage for test '%s': %s", test.Name, err)
			continue
		}
		logger.Infof("test '%s': coverage %.2f (%d covered, %d missing)",
			test.Name, report.Ratio, len(report.Covered), len(report.Missing))
	}

	classReport, err := collector.ClassCoverage()
	if err != nil {
		logger.Fatal(err)
	}

	if classReport.Inconsistent {
		logger.Warnf("class coverage for suite '%s' is undefined: tests touched different model sets", recordedSession.Suite)
	} else {
		logger.Infof("suite '%s': class coverage %.2f over models %v",
			recordedSession.Suite, classReport.Ratio, classReport.ModelsConsidered)
	}

	if url := config.FactURL(); url != "" {
		fact := publish.NewFact(classReport, recordedSession.Suite)
		err = publish.NewPublisher(url).Publish(fact)
		if err != nil {
			logger.Errorf("error publishing fact '%s': %s", fact.Name, err)
		}
	}
}
