package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"driver":             "memory",
			"slowQueryThreshold": "200ms",
		},
		"graphql": map[string]any{
			"maxDepth": 10,
		},
		"passwordStrength": map[string]any{
			"minLength": 8,
		},
		"pubsub": map[string]any{
			"pushToken": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_DRIVER", want: "storage.driver"},
		{envKey: "STORAGE_SLOWQUERYTHRESHOLD", want: "storage.slowQueryThreshold"},
		{envKey: "GRAPHQL_MAXDEPTH", want: "graphql.maxDepth"},
		{envKey: "PASSWORDSTRENGTH_MINLENGTH", want: "passwordStrength.minLength"},
		{envKey: "PUBSUB_PUSHTOKEN", want: "pubsub.pushToken"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenttl"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
