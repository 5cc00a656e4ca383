package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	id := NewRequestID()
	assert.Len(t, id, RequestIDLength)
	for _, r := range id {
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			"unexpected character %q in request id %s", r, id)
	}
}

func TestNewSecretKey(t *testing.T) {
	key := NewSecretKey()
	assert.Len(t, key, SecretKeyLength)
	for _, r := range key {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "unexpected character %q in key %s", r, key)
	}
}

func TestNewRequestID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		assert.False(t, seen[id], "duplicate request id %s", id)
		seen[id] = true
	}
}
