package normalizer

import (
	"regexp"
	"strings"
)

// Default region settings for the council's home district. Addresses in the
// partner dataset are often abbreviated ("1호관 243호"), which external
// geocoders cannot resolve without the city/district context.
const defaultPrefix = "전북특별자치도 전주시 덕진구"

// defaultKeywords signal that an address already carries regional context
// and must not be prefixed again.
var defaultKeywords = []string{"전주", "전북", "특별자치", "덕진구"}

var (
	repeatedPeriods = regexp.MustCompile(`\.{2,}`)
	repeatedSpaces  = regexp.MustCompile(`\s{2,}`)
	separatorRuns   = regexp.MustCompile(`\s*[.,]\s*`)
)

// Normalizer turns heterogeneous free-text addresses into a canonical form
// that maximizes the external geocoder hit rate. The zero value is not
// usable; construct it with New or use the package-level Normalize.
type Normalizer struct {
	prefix   string   // prefix is prepended when no regional keyword is present.
	keywords []string // keywords mark addresses that already carry regional context.
}

// New creates a Normalizer for the given regional prefix and keyword set.
func New(prefix string, keywords []string) *Normalizer {
	return &Normalizer{prefix: prefix, keywords: keywords}
}

// Default returns a Normalizer configured for the council's home district.
func Default() *Normalizer {
	return New(defaultPrefix, defaultKeywords)
}

// Normalize canonicalizes a raw address, optionally stripping a trailing
// business name erroneously appended to it. It is a pure function and
// idempotent: Normalize(Normalize(a, n), n) == Normalize(a, n).
//
// Empty or blank input yields an empty string; no input is an error.
func (n *Normalizer) Normalize(raw, name string) string {
	out := strings.TrimSpace(raw)
	if out == "" {
		return ""
	}

	// Strip one exact trailing occurrence of the business name,
	// e.g. "공과대학 1호관 2층 만계치킨" with name "만계치킨".
	if name = strings.TrimSpace(name); name != "" && strings.HasSuffix(out, name) {
		out = strings.TrimSpace(strings.TrimSuffix(out, name))
	}

	out = repeatedPeriods.ReplaceAllString(out, ".")
	out = repeatedSpaces.ReplaceAllString(out, " ")
	out = separatorRuns.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}

	if !n.hasRegion(out) {
		out = n.prefix + " " + out
	}

	return strings.TrimSpace(out)
}

// hasRegion reports whether the address already names the city, province
// or district.
func (n *Normalizer) hasRegion(address string) bool {
	for _, kw := range n.keywords {
		if strings.Contains(address, kw) {
			return true
		}
	}
	return false
}

var std = Default()

// Normalize canonicalizes an address using the default regional settings.
func Normalize(raw, name string) string {
	return std.Normalize(raw, name)
}
