package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLExecutor defines the contract required by repositories for executing SQL queries.
// *pgxpool.Pool satisfies it, as does *SQLRunner.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// DefaultSlowQuery is the duration after which a statement is logged at warn.
const DefaultSlowQuery = 250 * time.Millisecond

var (
	markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	errEmptyQuery    = errors.New("empty query")
	errMissingMarker = errors.New("sql marker missing or invalid")
)

// SQLRunner strips the `--sql <uuid>` marker from sqlinline statements and
// logs each execution under that marker.
type SQLRunner struct {
	DB            SQLExecutor
	Logger        zerolog.Logger
	SlowThreshold time.Duration
}

func NewSQLRunner(db SQLExecutor, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{DB: db, Logger: logger, SlowThreshold: DefaultSlowQuery}
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, body, err := extractMarker(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	start := time.Now()
	tag, err := r.DB.Exec(ctx, body, args...)
	if err != nil {
		r.Logger.Error().Err(err).Str("sql", marker).Msg("exec failed")
		return tag, err
	}
	r.timed(marker, start).Int64("rows", tag.RowsAffected()).Msg("exec")
	return tag, nil
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, body, err := extractMarker(query)
	if err != nil {
		return errorRow{err: err}
	}
	return &loggingRow{row: r.DB.QueryRow(ctx, body, args...), runner: r, marker: marker, start: time.Now()}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, body, err := extractMarker(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := r.DB.Query(ctx, body, args...)
	if err != nil {
		r.Logger.Error().Err(err).Str("sql", marker).Msg("query failed")
		return nil, err
	}
	return &loggingRows{Rows: rows, runner: r, marker: marker, start: start}, nil
}

// timed starts a log event for a finished statement, at warn when it ran
// longer than SlowThreshold.
func (r *SQLRunner) timed(marker string, start time.Time) *zerolog.Event {
	took := time.Since(start)
	evt := r.Logger.Debug()
	if r.SlowThreshold > 0 && took > r.SlowThreshold {
		evt = r.Logger.Warn().Bool("slow", true)
	}
	return evt.Str("sql", marker).Dur("took", took)
}

// IsNoRows reports whether err signals an empty single-row result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type loggingRow struct {
	row    pgx.Row
	runner *SQLRunner
	marker string
	start  time.Time
}

func (l *loggingRow) Scan(dest ...any) error {
	err := l.row.Scan(dest...)
	if err != nil && !IsNoRows(err) {
		l.runner.Logger.Error().Err(err).Str("sql", l.marker).Msg("scan failed")
		return err
	}
	l.runner.timed(l.marker, l.start).Bool("found", err == nil).Msg("query_row")
	return err
}

type loggingRows struct {
	pgx.Rows
	runner *SQLRunner
	marker string
	start  time.Time
	count  int
	closed bool
}

func (l *loggingRows) Next() bool {
	if l.Rows.Next() {
		l.count++
		return true
	}
	return false
}

func (l *loggingRows) Close() {
	l.Rows.Close()
	if l.closed {
		return
	}
	l.closed = true
	if err := l.Rows.Err(); err != nil {
		l.runner.Logger.Error().Err(err).Str("sql", l.marker).Msg("rows failed")
		return
	}
	l.runner.timed(l.marker, l.start).Int("rows", l.count).Msg("query")
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(...any) error {
	return e.err
}

// extractMarker splits a sqlinline statement into its marker id and the SQL
// sent to the server.
func extractMarker(query string) (marker, body string, err error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", "", errEmptyQuery
	}
	first, rest, _ := strings.Cut(trimmed, "\n")
	first = strings.TrimSpace(first)
	if !markerRegexp.MatchString(first) {
		return "", "", errMissingMarker
	}
	return strings.TrimPrefix(first, "--sql "), rest, nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
