package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("jane@example.com"))
	assert.False(t, IsEmailValid(""))
	assert.False(t, IsEmailValid("jane"))
	assert.False(t, IsEmailValid("jane@localhost"))
	assert.False(t, IsEmailValid("Jane <jane@example.com>"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Jane@Example.com", NormalizeEmail("  Jane@Example.com "))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "5551234567", NormalizePhone("(555) 123-4567"))
	assert.True(t, IsPhoneValid("+1 (555) 123-4567"))
	assert.False(t, IsPhoneValid("12345"))
	assert.False(t, IsPhoneValid("1234567890123456"))
}
