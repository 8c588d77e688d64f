package sys

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all tool-level configuration for vibecite. Session state
// lives in the working directory; this covers how the agent is invoked.
type Config struct {
	Agent struct {
		Provider       string `mapstructure:"provider"` // claude|ollama
		Command        string `mapstructure:"command"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"agent"`

	Model struct {
		Endpoint string `mapstructure:"endpoint"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"model"`

	Export struct {
		DefaultBib string `mapstructure:"default_bib"`
	} `mapstructure:"export"`

	Log struct {
		Level   string `mapstructure:"level"`
		Console bool   `mapstructure:"console"`
	} `mapstructure:"log"`

	DataDir string `mapstructure:"-"`
}

// AgentTimeout returns the per-invocation delegate timeout.
func (c *Config) AgentTimeout() time.Duration {
	return time.Duration(c.Agent.TimeoutSeconds) * time.Second
}

// ConfigManager handles loading and saving configuration
type ConfigManager struct {
	v *viper.Viper
}

// NewConfigManager initializes the configuration system
func NewConfigManager() (*ConfigManager, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home dir: %w", err)
	}

	dataDir := filepath.Join(home, ".vibecite")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Default configuration
	v.SetDefault("agent.provider", "claude")
	v.SetDefault("agent.command", "claude")
	// Web search plus ranking can take minutes per paper.
	v.SetDefault("agent.timeout_seconds", 300)

	v.SetDefault("model.endpoint", "http://localhost:11434")
	v.SetDefault("model.name", "llama3")

	v.SetDefault("export.default_bib", "refs.bib")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)

	// Create config file if it doesn't exist
	configPath := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := v.SafeWriteConfig(); err != nil {
			return nil, fmt.Errorf("writing initial config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return &ConfigManager{v: v}, nil
}

// Load returns the current configuration
func (cm *ConfigManager) Load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	home, _ := os.UserHomeDir()
	cfg.DataDir = filepath.Join(home, ".vibecite")

	return &cfg, nil
}

// Save persists the current configuration
func (cm *ConfigManager) Save(cfg *Config) error {
	cm.v.Set("agent.provider", cfg.Agent.Provider)
	cm.v.Set("agent.command", cfg.Agent.Command)
	cm.v.Set("agent.timeout_seconds", cfg.Agent.TimeoutSeconds)
	cm.v.Set("model.endpoint", cfg.Model.Endpoint)
	cm.v.Set("model.name", cfg.Model.Name)
	cm.v.Set("export.default_bib", cfg.Export.DefaultBib)
	cm.v.Set("log.level", cfg.Log.Level)
	cm.v.Set("log.console", cfg.Log.Console)

	return cm.v.WriteConfig()
}

// GetDataPath returns a path inside the .vibecite directory
func (cm *ConfigManager) GetDataPath(subpath string) string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vibecite", subpath)
}
