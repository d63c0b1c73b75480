package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manager loads and saves the persisted configuration
type Manager interface {
	LoadConfig() (Config, error)
	SaveConfig(Config) error
	ConfigExists() bool
}

// FileManager implements Manager with real file operations
type FileManager struct {
	configFilePath string
}

// NewFileManager creates a Manager backed by the given config file path
func NewFileManager(configFilePath string) *FileManager {
	return &FileManager{configFilePath: configFilePath}
}

// LoadConfig loads the existing configuration or creates and loads the
// default configuration if no file exists yet
func (m *FileManager) LoadConfig() (Config, error) {
	c := Config{}
	defaultConfig := c.Default()

	if m.configFilePath == "" {
		return defaultConfig, fmt.Errorf("config file path not set")
	}

	if !m.ConfigExists() {
		if err := m.SaveConfig(defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config: %w", err)
		}
		return defaultConfig, nil
	}

	configFile, err := os.ReadFile(m.configFilePath)
	if err != nil {
		return defaultConfig, fmt.Errorf("failed to read config file: %w", err)
	}

	if len(configFile) == 0 {
		if err := m.SaveConfig(defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config to empty file: %w", err)
		}
		return defaultConfig, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(configFile, &cfg); err != nil {
		return defaultConfig, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func (m *FileManager) SaveConfig(cfg Config) error {
	if m.configFilePath == "" {
		return fmt.Errorf("config file path not set")
	}

	yamlData, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(m.configFilePath, yamlData, 0644)
}

// ConfigExists checks if a configuration file already exists
func (m *FileManager) ConfigExists() bool {
	_, err := os.Stat(m.configFilePath)
	return !os.IsNotExist(err)
}
