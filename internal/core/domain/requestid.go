package domain

import "crypto/rand"

const (
	// RequestIDLength is the length of a correlation id attached to a
	// generation trigger and matched against the Log ID column.
	RequestIDLength = 10

	// SecretKeyLength is the length of the key attached to report
	// briefs (market intelligence).
	SecretKeyLength = 25

	requestIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewRequestID generates a 10-character uppercase alphanumeric
// correlation id, e.g. "A7K9M2X5P1". It is generated immediately
// before a trigger call and held for the lifetime of the matching poll
// loop; a retry after failure always gets a fresh id.
//
// Uniqueness is probabilistic only. The datastore enforces nothing.
func NewRequestID() string {
	return randomToken(RequestIDLength, requestIDAlphabet)
}

// NewSecretKey generates a 25-character mixed-case alphanumeric key
// for report brief submissions.
func NewSecretKey() string {
	return randomToken(SecretKeyLength, secretKeyAlphabet)
}

func randomToken(length int, alphabet string) string {
	buf := make([]byte, length)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
