package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (r *Repository) CreateLanguage(ctx context.Context, language *domain.Language) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `INSERT INTO languages (name) VALUES ($1)`, language.Name); err != nil {
		return translateError(err)
	}

	return nil
}

// GetLanguagePage reads one page and the total count in a single
// transaction so the meta is consistent with the items.
func (r *Repository) GetLanguagePage(ctx context.Context, pageNumber int, itemsPerPage int) (*domain.Page[*domain.Language], error) {
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
		SELECT name FROM languages
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := tx.QueryContext(ctx, query, itemsPerPage, domain.PageOffset(pageNumber, itemsPerPage))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]*domain.Language, 0, itemsPerPage)
	for rows.Next() {
		language := &domain.Language{}
		if err := rows.Scan(&language.Name); err != nil {
			return nil, translateError(err)
		}
		items = append(items, language)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	var numberOfItems int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM languages`).Scan(&numberOfItems); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return &domain.Page[*domain.Language]{
		Items: items,
		Meta:  domain.NewPageMeta(pageNumber, itemsPerPage, numberOfItems),
	}, nil
}

func (r *Repository) DeleteLanguage(ctx context.Context, name string) (*domain.Language, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	language := &domain.Language{}
	query := `DELETE FROM languages WHERE name = $1 RETURNING name`
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&language.Name); err != nil {
		return nil, translateError(err)
	}

	return language, nil
}
