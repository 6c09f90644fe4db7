package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  log:
    level: info
http:
  port: 4000
secretKey:
  access: yaml-secret
auth:
  bcryptCost: 10
  tokenTtl: 168h
`

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("AUTH_BCRYPTCOST", "6")
	t.Setenv("SECRETKEY_ACCESS", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 6, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file missing.yaml not found")
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Storage.Driver = "memory"
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		want   string
	}{
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Storage.Driver = "sqlite" }, want: "unknown storage driver"},
		{name: "postgres without block", mutate: func(cfg *Config) { cfg.Storage.Driver = "postgres" }, want: "postgres block is missing"},
		{name: "empty secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = " " }, want: "secretKey.access"},
		{name: "negative depth", mutate: func(cfg *Config) { cfg.GraphQL = &GraphQLConfig{MaxDepth: -1} }, want: "graphql.maxDepth"},
		{name: "negative ttl", mutate: func(cfg *Config) { cfg.Auth = &AuthConfig{TokenTTL: -time.Second} }, want: "auth.tokenTtl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
