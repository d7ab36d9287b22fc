package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/flowcov/flowcov/internal/logging"
	"github.com/flowcov/flowcov/internal/util"
	"github.com/pkg/errors"
)

var (
	settings = map[string]Setting{}
)

func init() {
	// Coverage
	settings["ExcludedModels"] = Setting{"EXCLUDED_MODELS", "", []func(interface{}, string) error{util.IsCommaSeparatedList}}
	settings["Verbose"] = Setting{"VERBOSE_COVERAGE", "false", []func(interface{}, string) error{util.IsBool}}

	// Session replay
	settings["SessionFile"] = Setting{"SESSION_FILE", "session.yaml", []func(interface{}, string) error{util.IsNotEmpty}}
	settings["FactURL"] = Setting{"FACT_URL", "", []func(interface{}, string) error{}}

	// Logging
	settings["Level"] = Setting{"LOG_LEVEL", "info", []func(interface{}, string) error{util.IsNotEmpty}}
}

// Setting is an element of the app configuration. It contains the environment
// variable from which the setting is retrieved, its default value as well as a list
// of validations which the value of this setting needs to pass.
type Setting struct {
	key          string
	defaultValue string
	validations  []func(interface{}, string) error
}

// EnvConfig is a Configuration implementation which reads the configuration from the process environment.
type EnvConfig struct {
}

// NewConfiguration creates a configuration instance.
func NewConfiguration() (Configuration, error) {
	// Check if we have all we need.
	multiError := verifyEnv()
	if !multiError.Empty() {
		for _, err := range multiError.Errors {
			logging.AppLogger().Error(err)
		}
		return nil, errors.New("one or more required environment variables for this configuration are missing or invalid")
	}

	config := EnvConfig{}
	return &config, nil
}

// ExcludedModels returns the model keys excluded from every coverage ratio.
func (c *EnvConfig) ExcludedModels() []string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// Verbose returns true if computed ratios should be logged per test.
func (c *EnvConfig) Verbose() bool {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	verbose, _ := strconv.ParseBool(value)
	return verbose
}

// SessionFile returns the path or URL of the session file to replay.
func (c *EnvConfig) SessionFile() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// FactURL returns the endpoint coverage facts are published to.
func (c *EnvConfig) FactURL() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// Level returns the logging level.
func (c *EnvConfig) Level() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// String returns a string representation of the configuration.
func (c *EnvConfig) String() string {
	config := map[string]interface{}{}
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)
		// don't echo credentials
		if strings.Contains(setting.key, "PASSWORD") && len(value) > 0 {
			value = "***"
		}
		config[key] = value
	}
	return fmt.Sprintf("%v", config)
}

// verifyEnv checks whether all needed config options are set.
func verifyEnv() util.MultiError {
	var errors util.MultiError
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)

		for _, validateFunc := range setting.validations {
			errors.Collect(validateFunc(value, setting.key))
		}
	}

	return errors
}

func getConfigValueFromEnv(funcName string) string {
	setting := settings[funcName]

	value, ok := os.LookupEnv(setting.key)
	if !ok {
		value = setting.defaultValue
	}
	return value
}
