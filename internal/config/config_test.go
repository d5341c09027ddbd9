package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "certfolio.db", c.DatabaseDSN)
	assert.Equal(t, "admin", c.OwnerID)
	assert.Equal(t, "password123", c.OwnerPassword)
	assert.Equal(t, 3*time.Second, c.NoticeTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"certfolio"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "certfolio.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.NoticeTTL)
}
