package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ualumni-dev/ualumni/backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	cfg := &config.Config{}
	cfg.Password.BcryptCost = bcrypt.MinCost
	h := &Handler{config: cfg}

	hash, err := h.hashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse battery staple")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong password")))
}

// whitespace-only names pass required but would leave the mail greeting
// without a single usable field, so validation must reject them up front
func TestCreateAlumniRejectsBlankNames(t *testing.T) {
	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)

	body := `{"email":"a@b.example","names":"   ","surnames":"González","password":"longenough"}`
	r := httptest.NewRequest("POST", "/alumni", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.CreateAlumni(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be blank")
}

func TestUpdateAlumniRejectsBlankNames(t *testing.T) {
	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)

	for _, body := range []string{`{"names":" "}`, `{"surnames":""}`} {
		r := httptest.NewRequest("PATCH", "/alumni/a@b.example", strings.NewReader(body))
		w := httptest.NewRecorder()

		h.UpdateAlumni(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be blank")
	}
}
