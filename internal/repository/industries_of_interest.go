package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (r *Repository) CreateIndustryOfInterest(ctx context.Context, industry *domain.IndustryOfInterest) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `INSERT INTO industries_of_interest (name) VALUES ($1)`, industry.Name); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *Repository) GetIndustryOfInterestPage(ctx context.Context, pageNumber int, itemsPerPage int) (*domain.Page[*domain.IndustryOfInterest], error) {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT name FROM industries_of_interest
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := tx.QueryContext(ctx, query, itemsPerPage, domain.PageOffset(pageNumber, itemsPerPage))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]*domain.IndustryOfInterest, 0, itemsPerPage)
	for rows.Next() {
		industry := &domain.IndustryOfInterest{}
		if err := rows.Scan(&industry.Name); err != nil {
			return nil, translateError(err)
		}
		items = append(items, industry)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	var numberOfItems int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM industries_of_interest`).Scan(&numberOfItems); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return &domain.Page[*domain.IndustryOfInterest]{
		Items: items,
		Meta:  domain.NewPageMeta(pageNumber, itemsPerPage, numberOfItems),
	}, nil
}

func (r *Repository) DeleteIndustryOfInterest(ctx context.Context, name string) (*domain.IndustryOfInterest, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	industry := &domain.IndustryOfInterest{}
	query := `DELETE FROM industries_of_interest WHERE name = $1 RETURNING name`
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&industry.Name); err != nil {
		return nil, translateError(err)
	}

	return industry, nil
}
