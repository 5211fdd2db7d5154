package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) AddResumeLanguage(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req struct {
		LanguageName string `json:"languageName" validate:"required"`
		MasteryLevel int32  `json:"masteryLevel" validate:"required,min=1,max=5"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rl := &domain.ResumeLanguage{
		AlumniEmail:  email,
		LanguageName: req.LanguageName,
		MasteryLevel: req.MasteryLevel,
	}

	if err := h.repository.AddResumeLanguage(r.Context(), rl); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("the resume already lists the language (%s)", rl.LanguageName))
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, "there is no resume or language with the given key")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, rl)
}

func (h *Handler) GetResumeLanguages(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	languages, err := h.repository.GetResumeLanguages(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no resume for the given email (%s)", email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, languages)
}

func (h *Handler) RemoveResumeLanguage(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	name := chi.URLParam(r, "name")

	rl, err := h.repository.RemoveResumeLanguage(r.Context(), email, name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("the resume does not list the language (%s)", name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, rl)
}
