package config

import (
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by the command-line
// client.
type ClientConfig struct {
	// Adapter contains the gate service address and request timeout.
	Adapter Adapter
	// Client contains the token and username to send.
	Client Client
	// LogLevel is the minimum zerolog level.
	LogLevel string
}

// GetClientConfig builds the merged configuration and maps the fields the
// client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		Client:   cfg.Client,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
