package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHouseholdID(t *testing.T) {
	id := GenerateHouseholdID("Asha Verma", "12 MG Road")

	assert.True(t, strings.HasPrefix(id, "GCC-AV-"), id)
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.LessOrEqual(t, len(parts[2]), 4)

	// Deterministic for the same inputs
	assert.Equal(t, id, GenerateHouseholdID("Asha Verma", "12 MG Road"))

	// Address changes the hash suffix
	other := GenerateHouseholdID("Asha Verma", "14 MG Road")
	assert.NotEqual(t, id, other)
}

func TestGenerateHouseholdIDInitials(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateHouseholdID("ravi", "x"), "GCC-R-"))
	assert.True(t, strings.HasPrefix(GenerateHouseholdID("Amit Kumar Singh", "x"), "GCC-AKS-"))
}

func TestNewTransactionRef(t *testing.T) {
	ref := NewTransactionRef()
	assert.True(t, strings.HasPrefix(ref, "TXN-"))
	assert.Len(t, ref, 16)
	assert.Equal(t, strings.ToUpper(ref), ref)
	assert.NotEqual(t, ref, NewTransactionRef())
}

func TestFirstOfNextMonth(t *testing.T) {
	got := FirstOfNextMonth(time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)

	// December rolls over into the next year
	got = FirstOfNextMonth(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}

	token, err := GenerateJWT("64f0c0ffee0ddba11ca11ab1e", "user", cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee0ddba11ca11ab1e", claims["sub"])
	assert.Equal(t, "user", claims["role"])

	// Tokens signed with a different secret fail validation
	other := &config.Config{JWT: config.JWTConfig{Secret: "other-secret", ExpiresIn: 3600}}
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}
