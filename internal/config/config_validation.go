// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used.
// Adapter settings are only checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.VerifyTimeout <= 0 {
		return fmt.Errorf("%w: verification timeout must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.VerifyDelay < 0 {
		return fmt.Errorf("%w: negative verification delay", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
