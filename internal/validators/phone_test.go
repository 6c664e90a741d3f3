package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizePhone("123-456-7890"))
	assert.Equal(t, "1234567890", NormalizePhone("(123) 456-7890"))
	assert.Equal(t, "1234567890", NormalizePhone("1234567890"))
	assert.Equal(t, "15551234567", NormalizePhone("+1 555 123 4567"))
	assert.Equal(t, "", NormalizePhone("n/a"))
}

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("alice.j@example.com"))
	assert.False(t, IsEmailFormatValid("alice.j@"))
	assert.False(t, IsEmailFormatValid("@example.com"))
	assert.False(t, IsEmailFormatValid("not-an-email"))
}
