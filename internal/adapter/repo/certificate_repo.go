package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"certificates/internal/domain"
	"certificates/internal/infra"
	"certificates/internal/sqlinline"
)

const (
	uniqueViolation     = "23505"
	maxCreateAttempts   = 5
	certificateIDColumn = "certificate_id"
)

// CertificateRepositoryPG implements domain.CertificateRepository using PostgreSQL.
// Text matching runs in Go on top of the course filtered rows so both backends
// share the same folding rules.
type CertificateRepositoryPG struct {
	sql   infra.SQLExecutor
	now   func() time.Time
	newID func() string
}

// NewCertificateRepository creates a new PostgreSQL certificate repo.
func NewCertificateRepository(sql infra.SQLExecutor) *CertificateRepositoryPG {
	return &CertificateRepositoryPG{sql: sql, now: time.Now, newID: uuid.NewString}
}

// Create inserts a certificate, moving to the next certificate id suffix when
// the generated one is already taken.
func (r *CertificateRepositoryPG) Create(ctx context.Context, in domain.CertificateInput) (*domain.Certificate, error) {
	now := r.now().UTC().Truncate(time.Microsecond)
	suffix := domain.CertificateIDSuffix(now)

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		cert := domain.NewCertificate(in, r.newID(), domain.FormatCertificateID(now.Year(), suffix), now)
		_, err := r.sql.Exec(ctx, sqlinline.QInsertCertificate,
			cert.ID,
			cert.StudentName,
			cert.CourseName,
			cert.Commission,
			cert.CompletionDate,
			cert.DiscordHandle,
			cert.PersonalMessage,
			cert.Pronouns,
			cert.CertificateID,
			cert.FileURL,
			cert.CreatedAt,
		)
		if err == nil {
			return &cert, nil
		}
		if !isCertificateIDConflict(err) {
			return nil, fmt.Errorf("insert certificate: %w", err)
		}
		suffix = domain.NextCertificateSuffix(suffix)
	}
	return nil, fmt.Errorf("insert certificate: %w", domain.ErrConflict)
}

// Get fetches a certificate by id.
func (r *CertificateRepositoryPG) Get(ctx context.Context, id string) (*domain.Certificate, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetCertificate, id)
	cert, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cert, nil
}

// FindByStudentName returns certificates whose student name contains substring.
func (r *CertificateRepositoryPG) FindByStudentName(ctx context.Context, substring string) ([]domain.Certificate, error) {
	needle := domain.Fold(substring)
	return r.list(ctx, "", func(c domain.Certificate) bool {
		return domain.ContainsFold(c.StudentName, needle)
	})
}

// ListAll returns every certificate, most recent first.
func (r *CertificateRepositoryPG) ListAll(ctx context.Context) ([]domain.Certificate, error) {
	return r.list(ctx, "", nil)
}

// Search filters by course in SQL and by query in Go.
func (r *CertificateRepositoryPG) Search(ctx context.Context, query, course string) ([]domain.Certificate, error) {
	f := domain.NewFilter(query, course)
	return r.list(ctx, course, f.Match)
}

// Delete removes the certificate; unknown ids are ignored.
func (r *CertificateRepositoryPG) Delete(ctx context.Context, id string) error {
	if _, err := r.sql.Exec(ctx, sqlinline.QDeleteCertificate, id); err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}

// Ping checks that the database answers a trivial query.
func (r *CertificateRepositoryPG) Ping(ctx context.Context) error {
	var one int
	if err := r.sql.QueryRow(ctx, sqlinline.QPing).Scan(&one); err != nil {
		return fmt.Errorf("ping certificates store: %w", err)
	}
	return nil
}

func (r *CertificateRepositoryPG) list(ctx context.Context, course string, keep func(domain.Certificate) bool) ([]domain.Certificate, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCertificates, course)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	items := []domain.Certificate{}
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(*cert) {
			items = append(items, *cert)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanCertificate(row pgx.Row) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := row.Scan(
		&c.ID,
		&c.StudentName,
		&c.CourseName,
		&c.Commission,
		&c.CompletionDate,
		&c.DiscordHandle,
		&c.PersonalMessage,
		&c.Pronouns,
		&c.CertificateID,
		&c.FileURL,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func isCertificateIDConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, certificateIDColumn)
}

var _ domain.CertificateRepository = (*CertificateRepositoryPG)(nil)
