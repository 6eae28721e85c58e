package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. BEZEL_TABS_DEFAULT_URL.
const EnvPrefix = "BEZEL"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	if dir == "" {
		return nil, errors.New("config directory is required")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logger reads these names before any config exists.
	if err := v.BindEnv("logging.level", "BEZEL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BEZEL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BEZEL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BEZEL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
		logger:    zerolog.Nop(),
	}, nil
}

// SetLogger sets the logger used for reload diagnostics. Until it is called
// the manager logs nothing.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger.With().Str("component", "config").Logger()
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Tabs.DefaultURL = strings.TrimSpace(config.Tabs.DefaultURL)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the config file in use, or the path
// where it would be created.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig writes the defaults to config.toml and the JSON
// schema next to it.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.dir, configFileName)
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := WriteSchemaFile(m.dir); err != nil {
		return err
	}
	return nil
}

// setDefaults registers every default with viper so env overrides and
// partial files resolve against them.
func (m *Manager) setDefaults() {
	applyDefaults(m.viper)
}

func applyDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("window.width", defaults.Window.Width)
	v.SetDefault("window.height", defaults.Window.Height)
	v.SetDefault("window.bezel_width", defaults.Window.BezelWidth)

	v.SetDefault("tabs.default_url", defaults.Tabs.DefaultURL)
	v.SetDefault("tabs.title_max_length", defaults.Tabs.TitleMaxLength)

	v.SetDefault("sidebar.width", defaults.Sidebar.Width)
	v.SetDefault("sidebar.animation_duration_ms", defaults.Sidebar.AnimationDurationMs)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// Reset overwrites the config file with defaults and reloads it.
// Environment overrides still apply to the reloaded values.
func (m *Manager) Reset() (string, error) {
	configFile := filepath.Join(m.dir, configFileName)

	m.mu.Lock()
	err := m.writeDefaults(configFile)
	m.mu.Unlock()
	if err != nil {
		return "", err
	}

	if err := m.Load(); err != nil {
		return configFile, err
	}
	return configFile, nil
}

func (m *Manager) writeDefaults(configFile string) error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}

	fresh := viper.New()
	fresh.SetConfigType("toml")
	applyDefaults(fresh)
	if err := fresh.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if _, err := WriteSchemaFile(m.dir); err != nil {
		return err
	}
	return nil
}
