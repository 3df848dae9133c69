package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// Supported response locales.
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// Order matches the index returned by localeMatcher.
var (
	supportedLocales = []string{LocaleES, LocaleEN}
	localeMatcher    = language.NewMatcher([]language.Tag{language.Spanish, language.English})
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

var spanishSpeaking = map[string]struct{}{
	"AR": {}, "BO": {}, "CL": {}, "CO": {}, "CR": {}, "CU": {}, "DO": {}, "EC": {}, "ES": {}, "GQ": {},
	"GT": {}, "HN": {}, "MX": {}, "NI": {}, "PA": {}, "PE": {}, "PR": {}, "PY": {}, "SV": {}, "UY": {}, "VE": {},
}

// countryHeaders are set by CDNs and proxies that already geolocated the client.
var countryHeaders = []string{"X-Country-Code", "X-IP-Country", "CF-IPCountry", "X-Appengine-Country"}

// I18N stores the response locale and, when known, the client country in the request context.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ResolveCountry(r, lookup)
			ctx := context.WithValue(r.Context(), LocaleKey, detectLocale(r, defaultLocale, country))
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, country)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLocale prefers X-Locale, then Accept-Language, then the client
// country, then fallback.
func detectLocale(r *http.Request, fallback string, country string) string {
	if locale := matchLocale(r.Header.Get("X-Locale")); locale != "" {
		return locale
	}
	if locale := matchLocale(r.Header.Get("Accept-Language")); locale != "" {
		return locale
	}
	if country != "" {
		if _, ok := spanishSpeaking[strings.ToUpper(country)]; ok {
			return LocaleES
		}
		return LocaleEN
	}
	if locale := matchLocale(fallback); locale != "" {
		return locale
	}
	return LocaleES
}

// matchLocale maps a language list to a supported locale. Languages we do not
// translate get English; an empty or unparsable list yields "".
func matchLocale(header string) string {
	tags := parseTags(header)
	if len(tags) == 0 {
		return ""
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return LocaleEN
	}
	return supportedLocales[idx]
}

func parseTags(header string) []language.Tag {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	out := tags[:0]
	for _, t := range tags {
		if t != language.Und {
			out = append(out, t)
		}
	}
	return out
}

// LocaleFromContext returns the negotiated locale, defaulting to Spanish.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return LocaleES
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}

// ResolveCountry resolves a best-effort ISO country code for the given request.
func ResolveCountry(r *http.Request, lookup CountryLookup) string {
	if r == nil {
		return ""
	}
	for _, key := range countryHeaders {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	if region := explicitRegion(r.Header.Get("X-Locale")); region != "" {
		return region
	}
	if region := explicitRegion(r.Header.Get("Accept-Language")); region != "" {
		return region
	}
	if lookup == nil {
		return ""
	}
	if ip := ClientIP(r); ip != "" {
		if country, err := lookup(ip); err == nil && country != "" {
			return strings.ToUpper(country)
		}
	}
	return ""
}

// explicitRegion returns the first region written out in a language list,
// ignoring regions x/text would only infer ("es" alone is not Spain).
func explicitRegion(header string) string {
	for _, t := range parseTags(header) {
		if region, conf := t.Region(); conf == language.Exact {
			return region.String()
		}
	}
	return ""
}
