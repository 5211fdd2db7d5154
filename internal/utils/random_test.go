package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomizationSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		seed := GenerateRandomizationSeed()
		assert.GreaterOrEqual(t, seed, 0.0)
		assert.Less(t, seed, 1.0)
	}
}

func TestGenerateRandomFullName(t *testing.T) {
	names, surnames := GenerateRandomFullName()

	assert.Len(t, strings.Fields(names), 2)
	assert.Len(t, strings.Fields(surnames), 2)
}

func TestGenerateRandomAlumni(t *testing.T) {
	user, err := GenerateRandomAlumni("seed-password", "ualumni.example", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAlumni, user.Role)
	assert.True(t, strings.HasSuffix(user.Email, "@ualumni.example"))
	assert.NotEmpty(t, user.Names)
	assert.NotEmpty(t, user.Surnames)
	require.NotNil(t, user.TelephoneNumber)
	assert.True(t, strings.HasPrefix(*user.TelephoneNumber, "+58"))

	// generated addresses must be plain ASCII even though the name pool
	// carries accented characters
	local := strings.SplitN(user.Email, "@", 2)[0]
	for _, r := range local {
		assert.Less(t, r, rune(128), "email local part should be ASCII: %s", user.Email)
	}

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("seed-password")))
}
