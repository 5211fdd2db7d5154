package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (h *Handler) ExportResume(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	export, err := h.repository.GetResumeExport(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no resume for the given email (%s)", email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	resumePDF, err := h.pdfGen.Generate(export)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume_"+email+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resumePDF); err != nil {
		h.logInternalServerError(r, err)
	}
}
