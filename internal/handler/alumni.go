package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword salts and hashes a plaintext password; the plaintext is
// never stored or logged.
func (h *Handler) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.config.Password.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *Handler) CreateAlumni(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string  `json:"email" validate:"required,email"`
		Names           string  `json:"names" validate:"required,notblank"`
		Surnames        string  `json:"surnames" validate:"required,notblank"`
		Password        string  `json:"password" validate:"required,min=8"`
		Address         *string `json:"address"`
		TelephoneNumber *string `json:"telephoneNumber"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	passwordHash, err := h.hashPassword(req.Password)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Email:           req.Email,
		Names:           req.Names,
		Surnames:        req.Surnames,
		PasswordHash:    passwordHash,
		Role:            domain.RoleAlumni,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
	}

	if err := h.repository.CreateAlumni(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("there already exists an alumni with the given email (%s)", req.Email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// send the account verification mail right away
	if err := h.publishVerificationMail(r.Context(), user.Email, user.Names, user.Surnames); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusCreated, user)
}

func (h *Handler) GetAlumniPageRandomly(w http.ResponseWriter, r *http.Request) {
	pageNumber, itemsPerPage, err := readPaginationParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	seed, err := readRandomizationSeed(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	page, err := h.repository.FindAlumniPageRandomly(r.Context(), pageNumber, itemsPerPage, seed)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, page)
}

func (h *Handler) GetAlumni(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	alumni, err := h.repository.GetAlumniByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// absence is not an error for a lookup
			h.successResponse(w, r, http.StatusOK, nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, alumni)
}

func (h *Handler) UpdateAlumni(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req struct {
		Email           *string `json:"email" validate:"omitempty,email"`
		Names           *string `json:"names" validate:"omitnil,notblank"`
		Surnames        *string `json:"surnames" validate:"omitnil,notblank"`
		Address         *string `json:"address"`
		TelephoneNumber *string `json:"telephoneNumber"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := &domain.AlumniPatch{
		Email:           req.Email,
		Names:           req.Names,
		Surnames:        req.Surnames,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
	}

	alumni, err := h.repository.UpdateAlumni(r.Context(), email, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no alumni with the given email (%s)", email))
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, "cannot update the email, there already exists an alumni with the same email")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, alumni)
}

func (h *Handler) DeleteAlumni(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	alumni, err := h.repository.DeleteAlumni(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no alumni with the given email (%s)", email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, alumni)
}
