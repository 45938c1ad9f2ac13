package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{name: "default cost", cost: "", wantCost: 12},
		{name: "explicit cost", cost: "10", wantCost: 10},
		{name: "upper bound", cost: "14", wantCost: 14},
		{name: "below range", cost: "9", wantErr: true},
		{name: "above range", cost: "15", wantErr: true},
		{name: "not a number", cost: "cheap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("PASSWORD_PEPPER", "")

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
	assert.False(t, cfg.VerifyPassword("", hash))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	hash, err := peppered.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter2hunter2", hash))
	// Without the pepper the same password must not verify.
	assert.False(t, plain.VerifyPassword("hunter2hunter2", hash))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	first, err := cfg.HashPassword("same password")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, cfg.VerifyPassword("same password", first))
	assert.True(t, cfg.VerifyPassword("same password", second))
}

func TestPasswordConfig_VerifyRejectsGarbageHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}
	assert.False(t, cfg.VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, cfg.VerifyPassword("anything", ""))
}
