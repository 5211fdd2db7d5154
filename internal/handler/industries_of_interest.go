package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) CreateIndustryOfInterest(w http.ResponseWriter, r *http.Request) {
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

	industry := &domain.IndustryOfInterest{
		Name: req.Name,
	}

	if err := h.repository.CreateIndustryOfInterest(r.Context(), industry); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("there already exists an industry of interest with the given name (%s)", req.Name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, industry)
}

func (h *Handler) GetIndustryOfInterestPage(w http.ResponseWriter, r *http.Request) {
	pageNumber, itemsPerPage, err := readPaginationParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	page, err := h.repository.GetIndustryOfInterestPage(r.Context(), pageNumber, itemsPerPage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, page)
}

func (h *Handler) DeleteIndustryOfInterest(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	industry, err := h.repository.DeleteIndustryOfInterest(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no industry of interest with the given name (%s)", name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, industry)
}
