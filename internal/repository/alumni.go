package repository

import (
	"context"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

// CreateAlumni inserts the user, its alumni profile and an empty resume in
// one transaction, so an alumni never exists without a resume.
func (r *Repository) CreateAlumni(ctx context.Context, user *domain.User) error {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO users (email, names, surnames, password_hash, role, address, telephone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING is_verified, created_at
	`
	args := []any{user.Email, user.Names, user.Surnames, user.PasswordHash, user.Role, user.Address, user.TelephoneNumber}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&user.IsVerified, &user.CreatedAt); err != nil {
		return translateError(err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO alumni (email) VALUES ($1)`, user.Email); err != nil {
		return translateError(err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO resumes (alumni_email) VALUES ($1)`, user.Email); err != nil {
		return translateError(err)
	}

	return translateError(tx.Commit())
}

// FindAlumniPageRandomly seeds the database random-number generator, reads
// one page of the randomized ordering and counts the total, all inside one
// transaction so page and count see the same row set. The same seed with
// the same page parameters reproduces the same page.
func (r *Repository) FindAlumniPageRandomly(ctx context.Context, pageNumber int, itemsPerPage int, seed float64) (*domain.RandomPage[*domain.Alumni], error) {
	ctx, cancel := r.transactionContext(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT setseed($1)`, seed); err != nil {
		return nil, translateError(err)
	}

	query := `
		SELECT u.email, u.names, u.surnames, u.password_hash, u.address, u.telephone_number, u.is_verified
		FROM alumni a
			INNER JOIN users u USING (email)
		ORDER BY random()
		LIMIT $1 OFFSET $2
	`
	rows, err := tx.QueryContext(ctx, query, itemsPerPage, domain.PageOffset(pageNumber, itemsPerPage))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]*domain.Alumni, 0, itemsPerPage)
	for rows.Next() {
		alumni := &domain.Alumni{}
		dst := []any{&alumni.Email, &alumni.Names, &alumni.Surnames, &alumni.PasswordHash, &alumni.Address, &alumni.TelephoneNumber, &alumni.IsVerified}
		if err := rows.Scan(dst...); err != nil {
			return nil, translateError(err)
		}
		items = append(items, alumni)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	var numberOfItems int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM alumni`).Scan(&numberOfItems); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	return &domain.RandomPage[*domain.Alumni]{
		Items: items,
		Meta: domain.RandomPageMeta{
			PageMeta:          domain.NewPageMeta(pageNumber, itemsPerPage, numberOfItems),
			RandomizationSeed: seed,
		},
	}, nil
}

func (r *Repository) GetAlumniByEmail(ctx context.Context, email string) (*domain.Alumni, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		SELECT u.names, u.surnames, u.password_hash, u.address, u.telephone_number, u.is_verified
		FROM alumni a
			INNER JOIN users u USING (email)
		WHERE a.email = $1
	`

	alumni := &domain.Alumni{
		Email: email,
	}

	dst := []any{&alumni.Names, &alumni.Surnames, &alumni.PasswordHash, &alumni.Address, &alumni.TelephoneNumber, &alumni.IsVerified}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, translateError(err)
	}

	return alumni, nil
}

// UpdateAlumni applies a partial update to the user record behind the
// alumni identified by email. A missing alumni is NotFound, never a no-op.
func (r *Repository) UpdateAlumni(ctx context.Context, email string, patch *domain.AlumniPatch) (*domain.Alumni, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET
			email = COALESCE($1, email),
			names = COALESCE($2, names),
			surnames = COALESCE($3, surnames),
			address = COALESCE($4, address),
			telephone_number = COALESCE($5, telephone_number)
		WHERE email = $6 AND EXISTS (SELECT 1 FROM alumni WHERE email = $6)
		RETURNING email, names, surnames, password_hash, address, telephone_number, is_verified
	`

	alumni := &domain.Alumni{}
	args := []any{patch.Email, patch.Names, patch.Surnames, patch.Address, patch.TelephoneNumber, email}
	dst := []any{&alumni.Email, &alumni.Names, &alumni.Surnames, &alumni.PasswordHash, &alumni.Address, &alumni.TelephoneNumber, &alumni.IsVerified}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return nil, translateError(err)
	}

	return alumni, nil
}

// DeleteAlumni removes the user record; the alumni profile and resume go
// with it through the schema's cascade rules.
func (r *Repository) DeleteAlumni(ctx context.Context, email string) (*domain.Alumni, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		DELETE FROM users
		WHERE email = $1 AND role = $2
		RETURNING email, names, surnames, password_hash, address, telephone_number, is_verified
	`

	alumni := &domain.Alumni{}
	dst := []any{&alumni.Email, &alumni.Names, &alumni.Surnames, &alumni.PasswordHash, &alumni.Address, &alumni.TelephoneNumber, &alumni.IsVerified}
	if err := r.dbpool.QueryRowContext(ctx, query, email, domain.RoleAlumni).Scan(dst...); err != nil {
		return nil, translateError(err)
	}

	return alumni, nil
}

func (r *Repository) SetAlumniVerified(ctx context.Context, email string) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET is_verified = TRUE
		WHERE email = $1 AND EXISTS (SELECT 1 FROM alumni WHERE email = $1)
		RETURNING email
	`

	var updated string
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&updated); err != nil {
		return translateError(err)
	}

	return nil
}
