package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (r *Repository) CreateContractType(ctx context.Context, contractType *domain.ContractType) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `INSERT INTO contract_types (name) VALUES ($1)`, contractType.Name); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *Repository) GetContractTypePage(ctx context.Context, pageNumber int, itemsPerPage int) (*domain.Page[*domain.ContractType], error) {
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
		SELECT name FROM contract_types
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := tx.QueryContext(ctx, query, itemsPerPage, domain.PageOffset(pageNumber, itemsPerPage))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]*domain.ContractType, 0, itemsPerPage)
	for rows.Next() {
		contractType := &domain.ContractType{}
		if err := rows.Scan(&contractType.Name); err != nil {
			return nil, translateError(err)
		}
		items = append(items, contractType)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	var numberOfItems int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM contract_types`).Scan(&numberOfItems); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return &domain.Page[*domain.ContractType]{
		Items: items,
		Meta:  domain.NewPageMeta(pageNumber, itemsPerPage, numberOfItems),
	}, nil
}

func (r *Repository) DeleteContractType(ctx context.Context, name string) (*domain.ContractType, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	contractType := &domain.ContractType{}
	query := `DELETE FROM contract_types WHERE name = $1 RETURNING name`
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&contractType.Name); err != nil {
		return nil, translateError(err)
	}

	return contractType, nil
}
