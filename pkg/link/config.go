package link

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a link run.
type Config struct {
	// LogLevel is the minimum level of the run's log stream
	// (debug/info/warn/error).
	LogLevel string `yaml:"log_level"`

	// FailOnCheck escalates physical-mode check violations from advisory
	// log output to a run failure. Off by default: the original flow
	// reports violations and proceeds to pairing regardless.
	FailOnCheck bool `yaml:"fail_on_check"`

	// Metrics enables recording run counters into the metrics registry.
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns the configuration a plain link run uses.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Metrics:  true,
	}
}

// LoadConfig reads a YAML config file and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configValidator collects all validation errors rather than failing on
// the first one.
type configValidator struct {
	errors []error
}

func (cv *configValidator) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	cv.errors = append(cv.errors, fmt.Errorf("Config.%s: value %q is not one of %v", field, value, allowed))
}

// Validate checks that every config value is usable.
func (c *Config) Validate() error {
	cv := &configValidator{}
	cv.oneOf("LogLevel", c.LogLevel, "debug", "info", "warn", "error")

	if len(cv.errors) == 0 {
		return nil
	}
	if len(cv.errors) == 1 {
		return cv.errors[0]
	}
	return fmt.Errorf("%d config errors, first: %w", len(cv.errors), cv.errors[0])
}
