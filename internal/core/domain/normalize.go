package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL reduces a brand URL to its canonical matching key:
// lower-cased, whitespace-trimmed, with the scheme, a leading "www."
// and a trailing slash stripped. It is idempotent, so values that are
// already normalized pass through unchanged.
//
// Brand identity is keyed on this value. Two entries with the same name
// but different normalized URLs are different brands.
func NormalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimSuffix(u, "/")
	return u
}

// CanonicalOrigin validates a raw user-supplied URL and returns its
// origin (scheme://host) and the host with any "www." prefix removed.
// The scheme must be present and must be http or https.
func CanonicalOrigin(raw string) (origin, host string, err error) {
	raw = strings.TrimSpace(raw)
	u, parseErr := url.Parse(raw)
	if parseErr != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	origin = strings.ToLower(u.Scheme + "://" + u.Host)
	host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	return origin, host, nil
}

// Slugify derives a URL-safe identifier from a brand name: lower-cased
// with every non-alphanumeric character replaced by a hyphen.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// FuzzyNameMatch reports whether two free-text idea names refer to the
// same idea: case-insensitive, whitespace-trimmed equality or
// containment in either direction.
//
// Containment can false-positive when one idea name is a prefix of
// another ("Summer" vs "Summer Splash"). That ambiguity is deliberate:
// the backing store carries no stable idea identifier, and this is the
// secondary strategy used only when request-id matching fails.
func FuzzyNameMatch(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
