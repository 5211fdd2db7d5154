package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

// SendResumeToCompany renders the alumni's resume as a PDF and enqueues a
// mail carrying it to the job offer's company address. A missing alumni or
// job offer fails the request instead of mailing a half-empty template.
func (h *Handler) SendResumeToCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AlumniEmail string `json:"alumniEmail" validate:"required,email"`
		JobOfferID  string `json:"jobOfferId" validate:"required,uuid"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	jobOfferID, err := uuid.Parse(req.JobOfferID)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	alumni, err := h.repository.GetAlumniByEmail(r.Context(), req.AlumniEmail)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no alumni with the given email (%s)", req.AlumniEmail))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	jobOffer, err := h.repository.GetJobOfferByID(r.Context(), jobOfferID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no job offer with the given id (%s)", req.JobOfferID))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	export, err := h.repository.GetResumeExport(r.Context(), alumni.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no resume for the given email (%s)", alumni.Email))
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

	mailMessage := domain.MailMessage{
		Type: domain.MailTypeSendResume,
		To:   jobOffer.CompanyEmail,
		Data: domain.SendResumeMailData{
			Alumni:    firstNameAndSurname(alumni.Names, alumni.Surnames),
			Names:     alumni.Names,
			Surnames:  alumni.Surnames,
			Position:  jobOffer.Position,
			ResumePDF: resumePDF,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	publishCtx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		publishCtx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, nil)
}
