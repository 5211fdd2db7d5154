package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

// AddResumeLanguage links a language to an alumni's resume. A missing
// resume or language surfaces as NotFound through the foreign keys; a
// duplicate link as AlreadyExists through the primary key.
func (r *Repository) AddResumeLanguage(ctx context.Context, rl *domain.ResumeLanguage) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		INSERT INTO resume_languages (alumni_email, language_name, mastery_level)
		VALUES ($1, $2, $3)
	`
	if _, err := r.dbpool.ExecContext(ctx, query, rl.AlumniEmail, rl.LanguageName, rl.MasteryLevel); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *Repository) GetResumeLanguages(ctx context.Context, alumniEmail string) ([]*domain.ResumeLanguage, error) {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// an empty list is only valid if the resume itself exists
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM resumes WHERE alumni_email = $1)`, alumniEmail).Scan(&exists); err != nil {
		return nil, translateError(err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	query := `
		SELECT language_name, mastery_level
		FROM resume_languages
		WHERE alumni_email = $1
		ORDER BY language_name
	`
	rows, err := tx.QueryContext(ctx, query, alumniEmail)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	languages := make([]*domain.ResumeLanguage, 0)
	for rows.Next() {
		rl := &domain.ResumeLanguage{
			AlumniEmail: alumniEmail,
		}
		if err := rows.Scan(&rl.LanguageName, &rl.MasteryLevel); err != nil {
			return nil, translateError(err)
		}
		languages = append(languages, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return languages, nil
}

func (r *Repository) RemoveResumeLanguage(ctx context.Context, alumniEmail string, languageName string) (*domain.ResumeLanguage, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		DELETE FROM resume_languages
		WHERE alumni_email = $1 AND language_name = $2
		RETURNING mastery_level
	`

	rl := &domain.ResumeLanguage{
		AlumniEmail:  alumniEmail,
		LanguageName: languageName,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, alumniEmail, languageName).Scan(&rl.MasteryLevel); err != nil {
		return nil, translateError(err)
	}

	return rl, nil
}
