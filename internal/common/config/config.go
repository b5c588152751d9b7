// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Twin    TwinConfig    `mapstructure:"twin"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds settings for the prediction API server.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TwinConfig holds settings for the client side of the prediction call.
// Host selection is configuration; the path is part of the wire contract.
type TwinConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	PredictPath string `mapstructure:"predict_path"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// PredictURL returns the full endpoint the prediction client posts to.
func (t TwinConfig) PredictURL() string {
	return strings.TrimRight(t.BaseURL, "/") + t.PredictPath
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
