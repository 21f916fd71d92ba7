package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
)

// DefaultFileName is the configuration file looked up when --config is not given.
const DefaultFileName = "emerald.yaml"

// Config represents the application configuration
type Config struct {
	Generator   GeneratorKind   `yaml:"generator"`
	Output      OutputConfig    `yaml:"output"`
	Site        SiteConfig      `yaml:"site"`
	Assets      AssetsConfig    `yaml:"assets,omitempty"`
	Templates   TemplatesConfig `yaml:"templates,omitempty"`
	VerifyLinks bool            `yaml:"verify_links"`
	Metrics     MetricsConfig   `yaml:"metrics,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// SiteConfig holds page-level settings of the HTML generator.
type SiteConfig struct {
	Title string `yaml:"title"`
	// MainPage is the relative name of the file whose page is also written as index.html.
	MainPage string `yaml:"main_page,omitempty"`
	// AllowRawHTML keeps HTML embedded in markdown descriptions instead of dropping it.
	AllowRawHTML bool `yaml:"allow_raw_html,omitempty"`
}

// AssetsConfig points at a directory replacing the bundled stylesheets, scripts and images.
type AssetsConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// TemplatesConfig points at a directory replacing the bundled page templates.
type TemplatesConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

type MetricsConfig struct {
	// Textfile, when set, receives the run's metrics in Prometheus text format.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	if loaded := loadEnvFiles(); len(loaded) > 0 {
		slog.Debug("Loaded environment files", slog.Any("files", loaded))
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, ferrors.ConfigNotFound(configPath)
	}

	// #nosec G304 -- path supplied by the operator.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	cfg, err := Parse(data)
	if err != nil {
		var ee *ferrors.EmeraldError
		if errors.As(err, &ee) {
			ee.WithContext("path", configPath)
		}
		return nil, err
	}
	slog.Debug("Loaded configuration", logfields.Path(configPath), logfields.Generator(string(cfg.Generator)))
	return cfg, nil
}

// Parse decodes YAML configuration after expanding ${VAR} references, applies
// defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "failed to unmarshal config")
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.New(ferrors.CategoryConfig, ferrors.SeverityFatal, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	example := Config{
		Generator: GeneratorHTML,
		Output:    OutputConfig{Directory: "doc"},
		Site: SiteConfig{
			Title:    "My Project API",
			MainPage: "README.md",
		},
		VerifyLinks: true,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.InternalError("failed to marshal config", err)
	}

	// #nosec G306 -- configuration is not secret.
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WriteFailed(configPath, err)
	}
	return nil
}
