package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		hours     string
		wantHours int
		wantErr   bool
	}{
		{name: "default expiration", secret: "s3cret", hours: "", wantHours: 24},
		{name: "custom expiration", secret: "s3cret", hours: "72", wantHours: 72},
		{name: "one hour minimum", secret: "s3cret", hours: "1", wantHours: 1},
		{name: "missing secret", secret: "", hours: "", wantErr: true},
		{name: "zero hours", secret: "s3cret", hours: "0", wantErr: true},
		{name: "negative hours", secret: "s3cret", hours: "-5", wantErr: true},
		{name: "non-numeric hours", secret: "s3cret", hours: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.hours)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.secret, cfg.Secret)
			assert.Equal(t, tt.wantHours, cfg.ExpirationHours)
		})
	}
}
