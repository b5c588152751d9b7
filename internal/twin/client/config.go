// internal/twin/client/config.go
package client

import (
	"strings"
	"time"

	"foresight/internal/common/config"
)

type Config struct {
	BaseURL     string
	PredictPath string
	Timeout     time.Duration
}

func FromTwinConfig(tc config.TwinConfig) *Config {
	return &Config{
		BaseURL:     tc.BaseURL,
		PredictPath: tc.PredictPath,
		Timeout:     config.GetDuration(tc.Timeout),
	}
}

func (c *Config) endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + c.PredictPath
}
