package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ualumni-dev/ualumni/backend/internal/config"
)

func newVerificationTestHandler(secret string, tokenExpiration int) *Handler {
	cfg := &config.Config{}
	cfg.Verification.BaseURL = "http://localhost:3000/auth/confirm"
	cfg.Verification.Secret = secret
	cfg.Verification.TokenExpiration = tokenExpiration

	return &Handler{config: cfg}
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	h := newVerificationTestHandler("test-secret", 3600)

	token, err := h.createVerificationToken("maria.gonzalez@ualumni.example")
	require.NoError(t, err)

	subject, err := h.parseVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "maria.gonzalez@ualumni.example", subject)
}

func TestParseVerificationTokenRejectsWrongSecret(t *testing.T) {
	h := newVerificationTestHandler("test-secret", 3600)

	token, err := h.createVerificationToken("maria.gonzalez@ualumni.example")
	require.NoError(t, err)

	other := newVerificationTestHandler("another-secret", 3600)
	_, err = other.parseVerificationToken(token)
	assert.Error(t, err)
}

func TestParseVerificationTokenRejectsExpired(t *testing.T) {
	h := newVerificationTestHandler("test-secret", -3600)

	token, err := h.createVerificationToken("maria.gonzalez@ualumni.example")
	require.NoError(t, err)

	_, err = h.parseVerificationToken(token)
	assert.Error(t, err)
}

func TestBuildVerificationLink(t *testing.T) {
	t.Run("appends token and email to the base url", func(t *testing.T) {
		h := newVerificationTestHandler("test-secret", 3600)

		link := h.buildVerificationLink("some-token", "alumni+test@ualumni.example")
		assert.Equal(t, "http://localhost:3000/auth/confirm?token=some-token&email=alumni%2Btest%40ualumni.example", link)
	})

	t.Run("keeps existing query parameters of the base url", func(t *testing.T) {
		h := newVerificationTestHandler("test-secret", 3600)
		h.config.Verification.BaseURL = "http://localhost:3000/auth/confirm?lang=es"

		link := h.buildVerificationLink("some-token", "a@b.example")
		assert.Contains(t, link, "?lang=es&token=some-token")
	})
}

func TestFirstNameAndSurname(t *testing.T) {
	assert.Equal(t, "María González", firstNameAndSurname("María José", "González Pérez"))
	assert.Equal(t, "Juan Rojas", firstNameAndSurname("Juan", "Rojas"))

	// blank values must not panic the mail flows
	assert.Equal(t, "", firstNameAndSurname("", ""))
	assert.Equal(t, "González", firstNameAndSurname("   ", "González Pérez"))
	assert.Equal(t, "María", firstNameAndSurname("María José", ""))
}

func TestExpirationHours(t *testing.T) {
	assert.Equal(t, 24, expirationHours(86400))
	assert.Equal(t, 1, expirationHours(3600))
	assert.Equal(t, 2, expirationHours(3601))

	// short lifetimes round up instead of displaying zero
	assert.Equal(t, 1, expirationHours(600))
}

func TestVerificationRedisKey(t *testing.T) {
	assert.Equal(t, "verification_a@b.example", verificationRedisKey("a@b.example"))
}
