package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (r *Repository) CreateJobOffer(ctx context.Context, offer *domain.JobOffer) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		INSERT INTO job_offers (company_email, position, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.dbpool.QueryRowContext(ctx, query, offer.CompanyEmail, offer.Position, offer.Description).Scan(&offer.ID, &offer.CreatedAt); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *Repository) GetJobOfferByID(ctx context.Context, id uuid.UUID) (*domain.JobOffer, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		SELECT company_email, position, description, created_at
		FROM job_offers WHERE id = $1
	`

	offer := &domain.JobOffer{
		ID: id,
	}

	dst := []any{&offer.CompanyEmail, &offer.Position, &offer.Description, &offer.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, translateError(err)
	}

	return offer, nil
}
