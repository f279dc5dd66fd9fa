package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because the database DSN is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/merged"}}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:4444"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/merged", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:4444", cfg.Server.HTTPAddress)
}

// TestBuild_FirstNonZeroWins verifies the merge priority: a field already set
// by an earlier source is not overridden by a later one.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/first"}},
			Server:  Server{HTTPAddress: "localhost:1111"},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/second"}},
			Server:  Server{HTTPAddress: "localhost:2222"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/first", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
}

// TestBuild_AppliesDefaults verifies that unset optional fields are filled
// with application defaults during validation.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/defaults"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSessionCookieName, cfg.App.SessionCookieName)
	assert.Equal(t, DefaultSessionTTL, cfg.App.SessionTTL)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON config referenced by an
// earlier source is parsed and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost/fromjson"},
		},
		"app": map[string]any{
			"session_ttl": "72h",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/fromjson", cfg.Storage.DB.DSN)
	assert.Equal(t, 72*time.Hour, cfg.App.SessionTTL)
}

// TestWithJSON_MissingFile verifies that a non-existent JSON path surfaces as
// a build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// source provided a file path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/nojson"}},
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://localhost/nojson", cfg.Storage.DB.DSN)
}
