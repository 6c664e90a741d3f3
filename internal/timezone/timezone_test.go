package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_ValidName(t *testing.T) {
	loc := Location("America/Chicago")
	require.NotNil(t, loc)
	assert.Equal(t, "America/Chicago", loc.String())
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
}

func TestLocation_UsableForConversion(t *testing.T) {
	loc := Location(DefaultTimezone)
	utc := time.Date(2026, 9, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, utc.In(loc).Day())
}
