package engine

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/viant/sqlvec/vector"
	"gopkg.in/yaml.v3"
)

// Config controls the vector function family. It is passed to
// RegisterVectorFunctions at engine initialization.
type Config struct {
	// Enabled toggles the whole function family; disabled functions fail.
	Enabled bool `yaml:"enabled"`
	// DefaultType is the element type used for TEXT literals that carry no
	// type of their own ("float32" or "float64").
	DefaultType string `yaml:"default_type"`
	// StrictBinary requires a type trailer on every BLOB argument.
	StrictBinary bool `yaml:"strict_binary"`
	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level"`

	// Logger receives registration and call diagnostics. When nil, a text
	// logger on stderr at LogLevel is used, or a discarding one when LogLevel
	// is empty.
	Logger *slog.Logger `yaml:"-"`

	defaultType vector.Type
}

// DefaultConfig returns an enabled configuration that defaults literals to
// float32, accepts BLOBs without a type trailer and does not log.
func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DefaultType: vector.TypeFloat32.String(),
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their DefaultConfig value. SQLVEC_ENABLED and SQLVEC_DEFAULT_TYPE
// override the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if enabled := os.Getenv("SQLVEC_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return nil, fmt.Errorf("invalid SQLVEC_ENABLED %q: %w", enabled, err)
		}
		cfg.Enabled = v
	}
	if typ := os.Getenv("SQLVEC_DEFAULT_TYPE"); typ != "" {
		cfg.DefaultType = typ
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init validates the configuration and fills in derived fields.
func (c *Config) Init() error {
	if c.DefaultType == "" {
		c.DefaultType = vector.TypeFloat32.String()
	}
	typ, err := vector.ParseType(c.DefaultType)
	if err != nil {
		return fmt.Errorf("invalid default_type: %w", err)
	}
	c.defaultType = typ
	if c.LogLevel == "" {
		if c.Logger == nil {
			c.Logger = NoopLogger()
		}
		return nil
	}
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	return nil
}

func (c *Config) decodeOptions() []vector.DecodeOption {
	if c.StrictBinary {
		return []vector.DecodeOption{vector.WithStrictTrailer()}
	}
	return nil
}

// NoopLogger discards all log output.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", level)
	}
}
