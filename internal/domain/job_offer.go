package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobOffer is consumed by the resume-forwarding mail flow.
type JobOffer struct {
	ID           uuid.UUID `json:"id"`
	CompanyEmail string    `json:"companyEmail"`
	Position     string    `json:"position"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}
