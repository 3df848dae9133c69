package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when the resolver is not initialized.
var ErrUnavailable = errors.New("geoip resolver unavailable")

const defaultCacheSize = 4096

// Resolver maps client IPs to ISO country codes using a MaxMind GeoIP2 or
// GeoLite2 country database. Answers are cached per IP.
type Resolver struct {
	reader *geoip2.Reader

	mu      sync.RWMutex
	cache   map[string]string
	maxSize int
}

// NewResolver opens the database at path. An empty path yields a nil resolver
// whose lookups report ErrUnavailable.
func NewResolver(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader, cache: make(map[string]string), maxSize: defaultCacheSize}, nil
}

// CountryCode returns the ISO country code for ip. Private, loopback and
// link-local addresses resolve to "" without touching the database.
func (r *Resolver) CountryCode(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return "", ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	if !routable(parsed) {
		return "", nil
	}

	key := parsed.String()
	r.mu.RLock()
	code, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return code, nil
	}

	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup country: %w", err)
	}
	if record != nil {
		code = record.Country.IsoCode
	}
	r.remember(key, code)
	return code, nil
}

func (r *Resolver) remember(key, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cache) >= r.maxSize {
		clear(r.cache)
	}
	r.cache[key] = code
}

// Lookup adapts the resolver to a plain lookup function. It returns nil when
// no database is loaded so callers can skip the lookup entirely.
func (r *Resolver) Lookup() func(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.CountryCode
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}

func routable(ip net.IP) bool {
	return !ip.IsPrivate() && !ip.IsLoopback() && !ip.IsLinkLocalUnicast() && !ip.IsUnspecified()
}
