package infra

import (
	"context"
	"fmt"

	"certificates/internal/sqlinline"
)

// EnsureSchema creates the certificates table and its ordering index when missing.
func EnsureSchema(ctx context.Context, sql SQLExecutor) error {
	for _, q := range []string{sqlinline.QCreateCertificatesTable, sqlinline.QCreateCertificatesIndex} {
		if _, err := sql.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
