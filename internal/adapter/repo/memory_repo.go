package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"certificates/internal/domain"
)

type memoryEntry struct {
	cert domain.Certificate
	seq  uint64
}

// MemoryRepository implements domain.CertificateRepository in process memory.
// Contents are lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*memoryEntry
	certIDs map[string]struct{}
	nextSeq uint64
	now     func() time.Time
	newID   func() string
}

// MemoryOption customizes a MemoryRepository.
type MemoryOption func(*MemoryRepository)

// WithClock overrides the time source used to stamp CreatedAt and certificate ids.
func WithClock(now func() time.Time) MemoryOption {
	return func(r *MemoryRepository) { r.now = now }
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository(opts ...MemoryOption) *MemoryRepository {
	r := &MemoryRepository{
		byID:    make(map[string]*memoryEntry),
		certIDs: make(map[string]struct{}),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores a new certificate and returns a copy of it.
func (r *MemoryRepository) Create(_ context.Context, in domain.CertificateInput) (*domain.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	id := r.newID()
	for r.byID[id] != nil {
		id = r.newID()
	}

	// Same-millisecond creations would share a suffix; walk forward to a free one.
	suffix := domain.CertificateIDSuffix(now)
	certID := domain.FormatCertificateID(now.Year(), suffix)
	for {
		if _, taken := r.certIDs[certID]; !taken {
			break
		}
		suffix = domain.NextCertificateSuffix(suffix)
		certID = domain.FormatCertificateID(now.Year(), suffix)
	}

	cert := domain.NewCertificate(in, id, certID, now)
	r.nextSeq++
	r.byID[id] = &memoryEntry{cert: cert, seq: r.nextSeq}
	r.certIDs[certID] = struct{}{}

	out := cert.Clone()
	return &out, nil
}

// Get returns domain.ErrNotFound when id is unknown.
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := e.cert.Clone()
	return &out, nil
}

// FindByStudentName matches substring against the student name only.
func (r *MemoryRepository) FindByStudentName(_ context.Context, substring string) ([]domain.Certificate, error) {
	needle := domain.Fold(substring)
	return r.collect(func(c domain.Certificate) bool {
		return domain.ContainsFold(c.StudentName, needle)
	}), nil
}

// ListAll returns every certificate, most recent first.
func (r *MemoryRepository) ListAll(_ context.Context) ([]domain.Certificate, error) {
	return r.collect(nil), nil
}

// Search applies domain.Filter semantics.
func (r *MemoryRepository) Search(_ context.Context, query, course string) ([]domain.Certificate, error) {
	f := domain.NewFilter(query, course)
	return r.collect(f.Match), nil
}

// Delete removes id if present.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.certIDs, e.cert.CertificateID)
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) collect(keep func(domain.Certificate) bool) []domain.Certificate {
	r.mu.RLock()
	entries := make([]*memoryEntry, 0, len(r.byID))
	for _, e := range r.byID {
		if keep == nil || keep(e.cert) {
			entries = append(entries, e)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b *memoryEntry) int {
		if c := b.cert.CreatedAt.Compare(a.cert.CreatedAt); c != 0 {
			return c
		}
		if a.seq < b.seq {
			return -1
		}
		if a.seq > b.seq {
			return 1
		}
		return 0
	})

	out := make([]domain.Certificate, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.cert.Clone())
	}
	return out
}

var _ domain.CertificateRepository = (*MemoryRepository)(nil)
