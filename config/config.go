package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables that override settings,
// e.g. PDFACT_SEMANTICS_HEADER_FOOTER_MIN_PAGES.
const EnvPrefix = "PDFACT"

// Load reads the configuration from defaults, an optional YAML file and the
// environment. With an empty path, pdfact.yaml is looked up in the working
// directory and in $HOME/.pdfact; a missing file is not an error there.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return unmarshal(v)
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(path string) (*Manager, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	return &Manager{
		v:         v,
		config:    cfg,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback for config changes.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// WatchConfig enables hot-reloading of the config file. Invalid edits are
// ignored and the previous configuration stays in effect.
func (m *Manager) WatchConfig() {
	m.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := unmarshal(m.v)
		if err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.v.WatchConfig()
}

// newViper sets up a viper instance with defaults, environment and config file.
func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pdfact")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pdfact")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// setDefaults registers every leaf setting so that environment overrides
// apply to nested keys.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("format", d.Format)
	v.SetDefault("unit", d.Unit)
	v.SetDefault("concurrency", d.Concurrency)

	v.SetDefault("statistics.font_size_precision", d.Statistics.FontSizePrecision)
	v.SetDefault("statistics.line_precision", d.Statistics.LinePrecision)

	v.SetDefault("semantics.strategies", d.Semantics.Strategies)
	v.SetDefault("semantics.title_font_size_ratio", d.Semantics.TitleFontSizeRatio)
	v.SetDefault("semantics.caption_pattern", d.Semantics.CaptionPattern)
	v.SetDefault("semantics.reference_headings", d.Semantics.ReferenceHeadings)
	v.SetDefault("semantics.header_footer.min_occurrence_ratio", d.Semantics.HeaderFooter.MinOccurrenceRatio)
	v.SetDefault("semantics.header_footer.min_pages", d.Semantics.HeaderFooter.MinPages)
	v.SetDefault("semantics.heading.min_font_size_ratio", d.Semantics.Heading.MinFontSizeRatio)
	v.SetDefault("semantics.heading.max_lines", d.Semantics.Heading.MaxLines)
	v.SetDefault("semantics.heading.max_words", d.Semantics.Heading.MaxWords)
	v.SetDefault("semantics.heading.bold_indicates_heading", d.Semantics.Heading.BoldIndicatesHeading)

	v.SetDefault("paragraphs.transparent_roles", d.Paragraphs.TransparentRoles)

	v.SetDefault("dehyphenation.lower_case", d.Dehyphenation.LowerCase)
}

// unmarshal parses the current viper state into a validated Config.
func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# pdfact configuration
# Every setting can be overridden with a PDFACT_ environment variable,
# e.g. PDFACT_LOG_LEVEL=debug or PDFACT_SEMANTICS_HEADER_FOOTER_MIN_PAGES=3

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
