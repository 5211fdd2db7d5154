package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func (r *Repository) CreateTechnicalSkill(ctx context.Context, skill *domain.TechnicalSkill) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `INSERT INTO technical_skills (name) VALUES ($1)`, skill.Name); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *Repository) GetTechnicalSkillPage(ctx context.Context, pageNumber int, itemsPerPage int) (*domain.Page[*domain.TechnicalSkill], error) {
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
		SELECT name FROM technical_skills
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := tx.QueryContext(ctx, query, itemsPerPage, domain.PageOffset(pageNumber, itemsPerPage))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]*domain.TechnicalSkill, 0, itemsPerPage)
	for rows.Next() {
		skill := &domain.TechnicalSkill{}
		if err := rows.Scan(&skill.Name); err != nil {
			return nil, translateError(err)
		}
		items = append(items, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	var numberOfItems int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM technical_skills`).Scan(&numberOfItems); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return &domain.Page[*domain.TechnicalSkill]{
		Items: items,
		Meta:  domain.NewPageMeta(pageNumber, itemsPerPage, numberOfItems),
	}, nil
}

func (r *Repository) DeleteTechnicalSkill(ctx context.Context, name string) (*domain.TechnicalSkill, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	skill := &domain.TechnicalSkill{}
	query := `DELETE FROM technical_skills WHERE name = $1 RETURNING name`
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&skill.Name); err != nil {
		return nil, translateError(err)
	}

	return skill, nil
}
