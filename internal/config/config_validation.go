// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied by validate when a field is left unset by every source.
const (
	DefaultHTTPAddress       = "localhost:3333"
	DefaultSessionCookieName = "sessionId"
	DefaultSessionTTL        = 7 * 24 * time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional fields.
//
// The database DSN is the only required value.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.SessionCookieName == "" {
		cfg.App.SessionCookieName = DefaultSessionCookieName
	}

	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}

	return nil
}
