package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chaindial/internal/endpoint"
	"chaindial/internal/logging"
)

const (
	DefaultDialTimeout   = 10 * time.Second
	DefaultReadTimeout   = 60 * time.Second
	DefaultDialKeepAlive = 30 * time.Second
)

// Duration wraps time.Duration so that YAML values like "60s" decode.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Stage is one segment of the chain definition. Relays are descriptor
// strings (scheme://host:port or bare host:port).
type Stage struct {
	Relays    []string `yaml:"relays"`
	Randomize bool     `yaml:"randomize"`
	HopLimit  int      `yaml:"hop_limit"`
}

// Chain names the three relay stages concatenated, in order, into the final
// relay sequence.
type Chain struct {
	Entry  Stage `yaml:"entry"`
	Middle Stage `yaml:"middle"`
	Exit   Stage `yaml:"exit"`
}

func (c Chain) Stages() []Stage {
	return []Stage{c.Entry, c.Middle, c.Exit}
}

type Config struct {
	LogLevel    string   `yaml:"log_level"`
	DialTimeout Duration `yaml:"dial_timeout"`
	ReadTimeout Duration `yaml:"read_timeout"`
	Insecure    bool     `yaml:"insecure"`
	Chain       Chain    `yaml:"chain"`

	Level logging.Level `yaml:"-"`
}

// Default returns the configuration used when no file is given: a direct
// chain with stock timeouts.
func Default() Config {
	cfg := Config{LogLevel: "info", Level: logging.LevelInfo}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DialTimeout <= 0 {
		c.DialTimeout = Duration(DefaultDialTimeout)
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = Duration(DefaultReadTimeout)
	}
}

func (c *Config) validate() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	c.Level = level

	for _, name := range []string{"entry", "middle", "exit"} {
		stage := c.stage(name)
		if stage.HopLimit < 0 {
			return fmt.Errorf("chain.%s: hop_limit must not be negative, got %d", name, stage.HopLimit)
		}
		for _, raw := range stage.Relays {
			if _, err := endpoint.Parse(raw); err != nil {
				return fmt.Errorf("chain.%s: %w", name, err)
			}
		}
	}
	return nil
}

func (c *Config) stage(name string) Stage {
	switch name {
	case "entry":
		return c.Chain.Entry
	case "middle":
		return c.Chain.Middle
	default:
		return c.Chain.Exit
	}
}
