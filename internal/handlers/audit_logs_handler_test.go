package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditWindow_UsesBusinessTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	from, to := auditWindow("2026-09-10", "2026-09-10", ny)

	// Midnight in the business timezone, not UTC midnight.
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, ny), from)
	assert.Equal(t, time.Date(2026, 9, 11, 0, 0, 0, 0, ny), to)

	// An event at 22:00 local on the 10th sits inside the window even
	// though its UTC date is the 11th.
	event := time.Date(2026, 9, 10, 22, 0, 0, 0, ny)
	assert.Equal(t, 11, event.UTC().Day())
	assert.False(t, event.Before(from))
	assert.False(t, event.After(to))
}

func TestAuditWindow_AbsentAndMalformedFilters(t *testing.T) {
	from, to := auditWindow("", "", time.UTC)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	from, to = auditWindow("10/09/2026", "not-a-date", time.UTC)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}
