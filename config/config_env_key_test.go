package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "10MB",
			"rateLimit": map[string]any{
				"expiresIn": "3m",
			},
		},
		"auth": map[string]any{
			"bcryptCost":          10,
			"restrictEditToOwner": false,
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"listing": map[string]any{
			"maxPerPage": 100,
		},
		"postgres": map[string]any{
			"master": map[string]any{
				"userName": "userhub",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_RATELIMIT_EXPIRESIN", want: "http.rateLimit.expiresIn"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_RESTRICTEDITTOOWNER", want: "auth.restrictEditToOwner"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "LISTING_MAXPERPAGE", want: "listing.maxPerPage"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SENTRY__DSN", want: "sentry.dsn"},
		{envKey: "STORAGE_UNKNOWN_KEY", want: "storage.unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "bucketurl", normalizeToken("bucket-URL"))
	assert.Equal(t, "perpage2", normalizeToken("per_Page 2"))
}
