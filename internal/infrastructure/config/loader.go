package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/dockyard/config.toml.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DOCKYARD_LAYOUT_CAN_SPLIT, DOCKYARD_DATABASE_PATH, ...
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.apply()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// apply unmarshals, normalizes and validates the viper state. Must be called
// with m.mu held for write.
func (m *Manager) apply() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	if config.Layout.LayoutUnit <= 0 {
		config.Layout.LayoutUnit = defaultLayoutUnit
	}

	for action, keys := range config.Keybindings {
		cleaned := keys[:0]
		for _, key := range keys {
			if key = strings.TrimSpace(key); key != "" {
				cleaned = append(cleaned, key)
			}
		}
		config.Keybindings[action] = cleaned
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
	configCopy.Keybindings = make(map[string][]string, len(m.config.Keybindings))
	for action, keys := range m.config.Keybindings {
		configCopy.Keybindings[action] = append([]string(nil), keys...)
	}
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaFileName)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	m.setLayoutDefaults(defaults)
	m.setDockDefaults("docks.left", defaults.Docks.Left)
	m.setDockDefaults("docks.right", defaults.Docks.Right)
	m.setDockDefaults("docks.bottom", defaults.Docks.Bottom)

	for name, color := range defaults.Theme.Palette() {
		m.viper.SetDefault("theme."+name, color)
	}
	// Per action, so that a [keybindings] table in the file only overrides
	// the actions it names. Viper lowercases the action names.
	for action, keys := range defaults.Keybindings {
		m.viper.SetDefault("keybindings."+action, keys)
	}
	// Database.Path is resolved in apply.
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.drag_split_margin", defaults.Layout.DragSplitMargin)
	m.viper.SetDefault("layout.resize_handle_size", defaults.Layout.ResizeHandleSize)
	m.viper.SetDefault("layout.layout_unit", defaults.Layout.LayoutUnit)
	m.viper.SetDefault("layout.can_split", defaults.Layout.CanSplit)
	m.viper.SetDefault("layout.min_pane_percent", defaults.Layout.MinPanePercent)
	m.viper.SetDefault("layout.resize_step_percent", defaults.Layout.ResizeStepPercent)
	m.viper.SetDefault("layout.show_tab_bar", defaults.Layout.ShowTabBar)
	m.viper.SetDefault("layout.restore_on_startup", defaults.Layout.RestoreOnStartup)
	m.viper.SetDefault("layout.save_on_exit", defaults.Layout.SaveOnExit)
}

func (m *Manager) setDockDefaults(prefix string, dock DockConfig) {
	m.viper.SetDefault(prefix+".default_size", dock.DefaultSize)
	m.viper.SetDefault(prefix+".starts_open", dock.StartsOpen)
}
