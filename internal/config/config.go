package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dna-health-analyzer/internal/domain"
)

// Manager loads and validates application configuration using Viper.
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources.
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/dna-health-analyzer/")

	viper.SetEnvPrefix("DNA_HEALTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and environment variables suffice.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values.
func (m *Manager) setDefaults() {
	// Parser defaults. Raw exports run to ~1M short lines; one megabyte per
	// line is far beyond anything a legitimate file produces.
	viper.SetDefault("parser.max_line_bytes", 1024*1024)

	// PRS defaults
	viper.SetDefault("prs.high_risk_threshold", 75.0)
	viper.SetDefault("prs.cache_size", 128)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetParserConfig returns parser configuration.
func (m *Manager) GetParserConfig() *domain.ParserConfig {
	return &m.config.Parser
}

// GetPRSConfig returns risk engine configuration.
func (m *Manager) GetPRSConfig() *domain.PRSConfig {
	return &m.config.PRS
}

// Validate validates the configuration.
func (m *Manager) Validate() error {
	config := m.config

	if config.Parser.MaxLineBytes <= 0 {
		return fmt.Errorf("invalid parser max_line_bytes: %d", config.Parser.MaxLineBytes)
	}

	if config.PRS.HighRiskThreshold < 1 || config.PRS.HighRiskThreshold > 99 {
		return fmt.Errorf("invalid prs high_risk_threshold: %.1f (must be within [1, 99])", config.PRS.HighRiskThreshold)
	}
	if config.PRS.CacheSize <= 0 {
		return fmt.Errorf("invalid prs cache_size: %d", config.PRS.CacheSize)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}
	if f := strings.ToLower(config.Logging.Format); f != "json" && f != "text" {
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	return nil
}

// BuildLogger constructs a logrus logger from the logging configuration.
func (m *Manager) BuildLogger() *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(m.config.Logging.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(m.config.Logging.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if strings.ToLower(m.config.Logging.Output) == "stdout" {
		logger.SetOutput(os.Stdout)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return logger
}
