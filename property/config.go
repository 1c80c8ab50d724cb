package property

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the environment facing part of System configuration.
type Config struct {
	// SlowAnimations slows every animation down by this factor. Zero and one
	// mean real time.
	SlowAnimations uint64 `yaml:"slow_animations"`
	// Debug logs graph events to Output at debug level.
	Debug  bool      `yaml:"debug"`
	Output io.Writer `yaml:"-"`
}

const (
	EnvSlowAnimations = "PROPCORE_SLOW_ANIMATIONS"
	EnvDebug          = "PROPCORE_DEBUG"
)

// ConfigFromEnv reads PROPCORE_SLOW_ANIMATIONS and PROPCORE_DEBUG. A slow
// animation variable that is set but not a number means a factor of two.
func ConfigFromEnv() Config {
	var cfg Config
	if v, ok := os.LookupEnv(EnvSlowAnimations); ok {
		factor, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			factor = 2
		}
		cfg.SlowAnimations = factor
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	return cfg
}

// LoadConfig reads a YAML config file on top of cfg. Keys the file leaves
// out keep their value from cfg.
func LoadConfig(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return os.Stderr
	}
	return c.Output
}
