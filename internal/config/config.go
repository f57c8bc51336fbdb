package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "eastui.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "eastui.yaml"

	// DefaultAddress is the default server listen address.
	DefaultAddress = ":8080"

	// DefaultRefetchInterval is the default dataset poll interval.
	DefaultRefetchInterval = "30s"

	// BackendMemory selects the in-memory dataset store.
	BackendMemory = "memory"

	// BackendS3 selects the S3-backed dataset store.
	BackendS3 = "s3"
)

// Config represents the complete eastui.json (or eastui.yaml) configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Store contains dataset store configuration.
	Store StoreConfig `json:"store,omitempty" yaml:"store,omitempty"`

	// Dataset contains dataset cache configuration.
	Dataset DatasetConfig `json:"dataset,omitempty" yaml:"dataset,omitempty"`

	// Render contains HTML rendering configuration.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Address is the listen address (e.g., ":8080" or "localhost:3000").
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// StoreConfig contains dataset store settings.
type StoreConfig struct {
	// Backend selects the store implementation: "memory" or "s3".
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`

	// Bucket is the S3 bucket name. Required for the s3 backend.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is the S3 key prefix for dataset objects.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the AWS region for the s3 backend.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// DatasetConfig contains dataset cache settings.
type DatasetConfig struct {
	// RefetchInterval is the default hash poll interval (e.g., "30s").
	RefetchInterval string `json:"refetchInterval,omitempty" yaml:"refetchInterval,omitempty"`
}

// RenderConfig contains HTML rendering settings.
type RenderConfig struct {
	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// DisableSanitize turns off raw HTML sanitization.
	// Only safe when all markup comes from trusted sources.
	DisableSanitize bool `json:"disableSanitize,omitempty" yaml:"disableSanitize,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Address: DefaultAddress,
		},
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		Dataset: DatasetConfig{
			RefetchInterval: DefaultRefetchInterval,
		},
	}
}

// LoadFromWorkingDir reads configuration from the current directory.
// A missing config file yields defaults rather than an error.
func LoadFromWorkingDir() (*Config, error) {
	cfg, err := Load(".")
	if err != nil {
		var ee *errors.EastError
		if stderrors.As(err, &ee) && ee.Code == "E403" {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from the specified directory.
// It looks for eastui.json first, then eastui.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E403").
		WithDetail("No " + JSONFileName + " or " + YAMLFileName + " found in " + dir).
		WithSuggestion("Create " + JSONFileName + " or pass an explicit config path")
}

// LoadFile reads configuration from the specified file path.
// The format is chosen by extension: .yaml/.yml parse as YAML, anything
// else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E403").WithDetail(path)
		}
		return nil, errors.New("E401").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E401").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid YAML")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E401").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
		}
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path as JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E401").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E401").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// RefetchInterval parses the configured poll interval.
func (c *Config) RefetchInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Dataset.RefetchInterval)
	if err != nil {
		return 0, errors.New("E401").
			WithDetail("Invalid refetchInterval: " + c.Dataset.RefetchInterval).
			WithSuggestion(`Use a Go duration such as "30s" or "2m"`)
	}
	return d, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendS3:
		if c.Store.Bucket == "" {
			return errors.New("E402").
				WithDetail("The s3 backend requires a bucket name").
				WithSuggestion(`Set store.bucket in ` + JSONFileName)
		}
	default:
		return errors.New("E402").WithDetail("Backend: " + c.Store.Backend)
	}

	if _, err := c.RefetchInterval(); err != nil {
		return err
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendMemory
	}
	if c.Dataset.RefetchInterval == "" {
		c.Dataset.RefetchInterval = DefaultRefetchInterval
	}
}
