package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	CoverageConfig
	RunConfig
	LogConfig

	// String returns a string representation of the configuration.
	String() string
}

// CoverageConfig defines how coverage ratios are computed and reported.
type CoverageConfig interface {
	// ExcludedModels returns the model keys excluded from every coverage ratio.
	ExcludedModels() []string

	// Verbose returns true if computed ratios should be logged per test.
	Verbose() bool
}

// RunConfig defines where the session to replay comes from and where facts go.
type RunConfig interface {
	// SessionFile returns the path or URL of the session file to replay.
	SessionFile() string

	// FactURL returns the endpoint coverage facts are published to.
	// An empty string disables publishing.
	FactURL() string
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string
}
