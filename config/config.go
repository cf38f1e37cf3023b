// SPDX-License-Identifier: MIT

// Package config holds the command-line configuration of ghsmst and the
// logrus logger factory shared by every command.
//
// Values are bound from cobra flags through viper, so each key can also be
// set in an optional ghsmst.toml (or .yaml, .json) file. See the mapstructure
// tags on Config for the key names.
package config

import (
	"time"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	// DefaultLogLevel keeps library chatter out of normal runs.
	DefaultLogLevel = "info"
	// DefaultTrials is the number of GHS runs per graph.
	DefaultTrials = 1
	// DefaultNodes is the size of generated graphs.
	DefaultNodes = 100
	// DefaultDensity is the extra-edge probability of generated graphs.
	DefaultDensity = 0.1
	// DefaultMaxWeight bounds generated weights when they need not be distinct.
	DefaultMaxWeight = 100
	// ConfigName is the base name of the optional config file.
	ConfigName = "ghsmst"
)

// Config contains the configuration of every ghsmst command.
type Config struct {
	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// LogFile, when set, receives a copy of every log entry.
	LogFile string `mapstructure:"log-file"`

	// ConfigDir is searched for ghsmst.toml|yaml|json.
	ConfigDir string `mapstructure:"config-dir"`

	// Seed drives the scheduler and the generators. 0 means "use the clock".
	Seed int64 `mapstructure:"seed"`

	// Trials is how many times each graph is run, with seeds Seed, Seed+1, ...
	Trials int `mapstructure:"trials"`

	// Trace is the path of a JSON event trace. Empty disables tracing.
	Trace string `mapstructure:"trace"`

	// Input is the graph file; empty or "-" reads stdin.
	Input string `mapstructure:"input"`

	// Verbose prints the tree and run statistics in addition to the verdict.
	Verbose bool `mapstructure:"verbose"`

	// Nodes, Density, Distinct and MaxWeight parametrize the generate command.
	Nodes     int     `mapstructure:"nodes"`
	Density   float64 `mapstructure:"density"`
	Distinct  bool    `mapstructure:"distinct"`
	MaxWeight int64   `mapstructure:"max-weight"`

	logger *logrus.Logger
}

// NewDefaultConfig returns the configuration used when no flag or file
// overrides anything.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		ConfigDir: ".",
		Trials:    DefaultTrials,
		Nodes:     DefaultNodes,
		Density:   DefaultDensity,
		Distinct:  true,
		MaxWeight: DefaultMaxWeight,
	}
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}

	return time.Now().UnixNano()
}

// Logger returns a formatted logrus Entry, with prefix set to "ghsmst".
// The logger is created on first use. When LogFile is set, an lfshook
// copies every entry to that file in plain text.
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)

		if c.LogFile != "" {
			c.logger.Hooks.Add(lfshook.NewHook(
				fileSink(c.LogFile),
				&logrus.TextFormatter{DisableColors: true},
			))
		}
	}

	return c.logger.WithField("prefix", "ghsmst")
}

// fileSink maps every level to path.
func fileSink(path string) lfshook.PathMap {
	pathMap := lfshook.PathMap{}
	for _, level := range logrus.AllLevels {
		pathMap[level] = path
	}

	return pathMap
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
