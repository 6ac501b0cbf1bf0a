// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Storage settings are deliberately not required: the application starts
// with no backend configured and reports the missing configuration on each
// data request instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
