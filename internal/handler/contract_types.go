package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) CreateContractType(w http.ResponseWriter, r *http.Request) {
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

	contractType := &domain.ContractType{
		Name: req.Name,
	}

	if err := h.repository.CreateContractType(r.Context(), contractType); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			h.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("there already exists a contract type with the given name (%s)", req.Name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, contractType)
}

func (h *Handler) GetContractTypePage(w http.ResponseWriter, r *http.Request) {
	pageNumber, itemsPerPage, err := readPaginationParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	page, err := h.repository.GetContractTypePage(r.Context(), pageNumber, itemsPerPage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, page)
}

func (h *Handler) DeleteContractType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	contractType, err := h.repository.DeleteContractType(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no contract type with the given name (%s)", name))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, contractType)
}
