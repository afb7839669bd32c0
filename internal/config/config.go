package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
	"github.com/brijrajsingh/SuperTerminal/internal/logging"
)

const (
	AppName  = "superterminal"
	FileName = "config.json"

	// EnvConfigDir overrides the directory holding config.json.
	EnvConfigDir = "SUPERTERMINAL_CONFIG_DIR"
)

// Config is everything persisted between invocations.
type Config struct {
	APIKey      string  `json:"api_key" mapstructure:"api_key"`
	Model       string  `json:"model" mapstructure:"model"`
	MaxTokens   uint32  `json:"max_tokens" mapstructure:"max_tokens"`
	Temperature float32 `json:"temperature" mapstructure:"temperature"`
}

var requiredKeys = []string{"api_key", "model", "max_tokens", "temperature"}

// HasAPIKey reports whether a credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// Update holds the optional field changes requested by `config`.
type Update struct {
	Model       *string
	MaxTokens   *uint32
	Temperature *float32
}

// Empty reports whether no field is set.
func (u Update) Empty() bool {
	return u.Model == nil && u.MaxTokens == nil && u.Temperature == nil
}

// Validate checks every requested change without touching any config.
func (u Update) Validate() error {
	if u.Model != nil && strings.TrimSpace(*u.Model) == "" {
		return serrors.InvalidInput("Model cannot be empty")
	}
	if u.MaxTokens != nil && *u.MaxTokens == 0 {
		return serrors.InvalidInput("Max tokens must be greater than 0")
	}
	if u.Temperature != nil {
		t := *u.Temperature
		if !(t >= MinTemperature && t <= MaxTemperature) {
			return serrors.InvalidInput("Temperature must be between %.1f and %.1f", MinTemperature, MaxTemperature)
		}
	}
	return nil
}

// Apply validates u and then copies its fields into c. Nothing is changed
// when validation fails. The returned bool reports whether any field was set.
func (c *Config) Apply(u Update) (bool, error) {
	if err := u.Validate(); err != nil {
		return false, err
	}
	if u.Model != nil {
		c.Model = strings.TrimSpace(*u.Model)
	}
	if u.MaxTokens != nil {
		c.MaxTokens = *u.MaxTokens
	}
	if u.Temperature != nil {
		c.Temperature = *u.Temperature
	}
	return !u.Empty(), nil
}

// DefaultPath returns the per-user location of config.json.
func DefaultPath() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, FileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", serrors.Config("Could not find config directory")
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Store reads and writes a Config at Path.
type Store struct {
	Path   string
	Getenv func(string) string
	Log    logrus.FieldLogger
}

// NewStore returns a Store at DefaultPath reading the process environment.
func NewStore(log logrus.FieldLogger) (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path, Getenv: os.Getenv, Log: log}, nil
}

func (s *Store) log() *logrus.Entry {
	var base logrus.FieldLogger = s.Log
	if base == nil {
		base = logging.Discard()
	}
	return logging.WithComponent(base, "config").WithField("path", s.Path)
}

func (s *Store) getenv(key string) string {
	if s.Getenv == nil {
		return os.Getenv(key)
	}
	return s.Getenv(key)
}

// Load parses the config file. A file missing any of the known keys is
// rejected as malformed.
func (s *Store) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, serrors.WrapConfig(err)
		}
		return nil, serrors.IO(err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, serrors.Config("missing field %q", key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, serrors.WrapConfig(err)
	}
	return &cfg, nil
}

// LoadOrDefault returns the stored config, or defaults built from the
// environment when the file is missing or unusable. Defaults are saved on a
// best-effort basis.
func (s *Store) LoadOrDefault() (*Config, error) {
	cfg, err := s.Load()
	if err == nil {
		return cfg, nil
	}
	s.log().WithError(err).Debug("using default configuration")

	cfg, err = NewFromEnv(s.getenv)
	if err != nil {
		return nil, err
	}

	if err := s.Save(cfg); err != nil {
		s.log().WithError(err).Debug("could not save default configuration")
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating parent directories.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return serrors.IO(err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return serrors.WrapConfig(err)
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return serrors.IO(err)
	}
	return nil
}
