package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "STORE_BACKEND", "DATA_FILE", "DB_DRIVER", "DB_DSN", "MONGO_URI", "MONGO_DB"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "memory", cfg.Backend)
	require.Equal(t, "data/rooms.json", cfg.DataFile)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("DATA_FILE", "/tmp/rooms.json")
	t.Setenv("ENV", "prod")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "file", cfg.Backend)
	require.Equal(t, "/tmp/rooms.json", cfg.DataFile)
	require.Equal(t, "prod", cfg.Env)
}
