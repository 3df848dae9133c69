package domain

import "context"

// CertificateRepository is the storage contract shared by every backend.
// Get returns ErrNotFound for unknown ids; Delete of an unknown id is a no-op.
// Listing operations order results by CreatedAt descending, keeping insertion
// order among equal timestamps.
type CertificateRepository interface {
	Create(ctx context.Context, in CertificateInput) (*Certificate, error)
	Get(ctx context.Context, id string) (*Certificate, error)
	FindByStudentName(ctx context.Context, substring string) ([]Certificate, error)
	ListAll(ctx context.Context) ([]Certificate, error)
	Search(ctx context.Context, query, course string) ([]Certificate, error)
	Delete(ctx context.Context, id string) error
}
