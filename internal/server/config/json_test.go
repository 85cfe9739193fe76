package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	c := defaults()
	require.NoError(t, parseJson(c, []string{"-a", ":1"}))
	assert.Equal(t, defaults(), c)
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	body := `{
		"endpoint_addr_http": ":9000",
		"token_format": "jwt",
		"secret_key": "k",
		"session_ttl": 3600000000000,
		"shutdown_timeout": "2s",
		"cors_allowed_origins": ["http://ui.test"],
		"seed": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c := defaults()
	require.NoError(t, parseJson(c, []string{"-config", path}))

	assert.Equal(t, ":9000", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, auth.TokenFormatJWT, c.TokenFormat)
	assert.Equal(t, "k", c.SecretKey)
	assert.Equal(t, time.Hour, c.SessionTTL)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.Equal(t, []string{"http://ui.test"}, c.CORSAllowedOrigins)
	assert.Equal(t, auth.HasherSHA256, c.Hasher)
	assert.True(t, c.Seed)
}

func TestParseJson_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"session_ttl": "later"}`), 0o600))

	assert.Error(t, parseJson(defaults(), []string{"-c", path}))
}
