package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) CreateJobOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyEmail string `json:"companyEmail" validate:"required,email"`
		Position     string `json:"position" validate:"required"`
		Description  string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	offer := &domain.JobOffer{
		CompanyEmail: req.CompanyEmail,
		Position:     req.Position,
		Description:  req.Description,
	}

	if err := h.repository.CreateJobOffer(r.Context(), offer); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusCreated, offer)
}

func (h *Handler) GetJobOffer(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job offer id")
		return
	}

	offer, err := h.repository.GetJobOfferByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no job offer with the given id (%s)", idParam))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, offer)
}
