package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestLoad_FlagsOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"vault:1","request_timeout":"2s"}`), 0o600))

	c, err := Load([]string{"-c", path, "-a", "vault:2"})
	require.NoError(t, err)
	assert.Equal(t, "vault:2", c.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]string{"-r", "soon"})
	assert.Error(t, err)

	_, err = Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}
