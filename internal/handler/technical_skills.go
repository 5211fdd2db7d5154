package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) CreateTechnicalSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	skill := &domain.TechnicalSkill{
		Name: req.Name,
	}

	if err := h.repository.CreateTechnicalSkill(r.Context(), skill); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("there already exists a technical skill with the given name (%s)", req.Name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, skill)
}

func (h *Handler) GetTechnicalSkillPage(w http.ResponseWriter, r *http.Request) {
	pageNumber, itemsPerPage, err := readPaginationParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	page, err := h.repository.GetTechnicalSkillPage(r.Context(), pageNumber, itemsPerPage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, page)
}

func (h *Handler) DeleteTechnicalSkill(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	skill, err := h.repository.DeleteTechnicalSkill(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no technical skill with the given name (%s)", name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, skill)
}
