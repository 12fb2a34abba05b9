package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytesKnownVectors(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashBytes(nil))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		HashBytes([]byte("hello")))
}

func TestHashBytesIsLowercaseHex(t *testing.T) {
	h := HashBytes([]byte("certificate bytes"))
	assert.Len(t, h, 64)
	for _, r := range h {
		ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		assert.True(t, ok, "unexpected rune %q in hash", r)
	}
}

func TestHashBytesDependsOnExactBytes(t *testing.T) {
	a := HashBytes([]byte("certificate"))
	b := HashBytes([]byte("certificate "))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashBytes([]byte("certificate")))
}
