package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// AppName is the name of this application used in log fields and fact names.
const AppName = "flowcov"

var appLogger = newAppLogger()

func newAppLogger() *log.Logger {
	logger := log.New()
	logger.Out = os.Stdout
	logger.Formatter = &log.TextFormatter{FullTimestamp: true}
	return logger
}

// AppLogger returns the application wide logger instance.
func AppLogger() *log.Logger {
	return appLogger
}

// SetLevel sets the log level of the application logger. Unknown level
// strings leave the current level unchanged and log a warning.
func SetLevel(level string) {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		appLogger.Warnf("unknown log level '%s', keeping '%s'", level, appLogger.GetLevel())
		return
	}
	appLogger.SetLevel(parsedLevel)
}
