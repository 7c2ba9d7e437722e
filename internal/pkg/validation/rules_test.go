package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"maria.santos+school@sub.example.co",
		"  padded@example.com  ",
	}
	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestIsValidLRN(t *testing.T) {
	assert.True(t, IsValidLRN(""), "LRN is optional")
	assert.True(t, IsValidLRN("123456789012"))
	assert.True(t, IsValidLRN(" 123456789012 "))

	assert.False(t, IsValidLRN("12345678901"), "too short")
	assert.False(t, IsValidLRN("1234567890123"), "too long")
	assert.False(t, IsValidLRN("12345678901a"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("09171234567"))
	assert.True(t, IsValidMobile("+639171234567"))

	assert.False(t, IsValidMobile(""))
	assert.False(t, IsValidMobile("12345"))
	assert.False(t, IsValidMobile("0917-123-4567"))
}
