package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

// GetResumeExport gathers everything the PDF template needs about one
// alumni in a single transaction.
func (r *Repository) GetResumeExport(ctx context.Context, alumniEmail string) (*domain.ResumeExport, error) {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	export := &domain.ResumeExport{
		Email: alumniEmail,
	}

	query := `
		SELECT u.names, u.surnames, res.about_me
		FROM resumes res
			INNER JOIN users u ON u.email = res.alumni_email
		WHERE res.alumni_email = $1
	`
	if err := tx.QueryRowContext(ctx, query, alumniEmail).Scan(&export.Names, &export.Surnames, &export.AboutMe); err != nil {
		return nil, translateError(err)
	}

	query = `
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

	for rows.Next() {
		rl := domain.ResumeLanguage{
			AlumniEmail: alumniEmail,
		}
		if err := rows.Scan(&rl.LanguageName, &rl.MasteryLevel); err != nil {
			return nil, translateError(err)
		}
		export.Languages = append(export.Languages, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return export, nil
}
