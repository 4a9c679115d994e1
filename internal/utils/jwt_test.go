package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "places-api-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWTToken(testIssuer, userID, "ann@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "ann@example.com", token.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		issuer   string
		userID   uuid.UUID
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", userID: userID, duration: time.Hour, signKey: testSignKey},
		{name: "nil user id", issuer: testIssuer, userID: uuid.Nil, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, userID: userID, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: userID, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, "a@x.com", tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	generated, err := GenerateJWTToken(testIssuer, userID, "ann@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, "ann@example.com", parsed.Email)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, uuid.New(), "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "different-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, uuid.New(), "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, "other-service")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, uuid.New(), "a@x.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	require.Error(t, err)
}

