package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresStoreAndSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	_, err = LoadConfig()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "carhub", cfg.MongoDBName)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasCloudinary())
}

func TestAllowedOriginsSplit(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", "https://carhub.app, http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://carhub.app", "http://localhost:3000"}, cfg.AllowedOrigins)
}
