package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	catalog, err := BuildCatalog("09:00", "11:00", 30*time.Minute)
	require.NoError(t, err)
	return New(catalog, time.UTC, time.Hour)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, min int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

func TestBuildCatalog(t *testing.T) {
	catalog, err := BuildCatalog("09:00", "11:00", 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, catalog)

	_, err = BuildCatalog("11:00", "09:00", 30*time.Minute)
	assert.Error(t, err)

	_, err = BuildCatalog("09:00", "11:00", 0)
	assert.Error(t, err)

	_, err = BuildCatalog("9am", "11:00", 30*time.Minute)
	assert.Error(t, err)
}

func TestAvailableSlots_ExcludesOccupied(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	now := at(day(2026, 9, 1), 12, 0)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
		{ID: "b1", StartTime: at(d, 10, 30), Kind: KindBlock},
	}

	slots := s.AvailableSlots(d, records, "", now)
	assert.Equal(t, []string{"09:00", "10:00"}, slots)
}

func TestAvailableSlots_IgnoresOtherDays(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	other := day(2026, 9, 11)
	now := at(day(2026, 9, 1), 12, 0)

	records := []Record{
		{ID: "a1", StartTime: at(other, 9, 0), Kind: KindBooking},
	}

	slots := s.AvailableSlots(d, records, "", now)
	assert.Equal(t, s.Catalog(), slots)
}

func TestAvailableSlots_EditSelfConsistency(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	now := at(day(2026, 9, 1), 12, 0)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
		{ID: "a2", StartTime: at(d, 10, 0), Kind: KindBooking},
	}

	// Editing a1: its own slot is offered, a2's is not.
	slots := s.AvailableSlots(d, records, "a1", now)
	assert.Contains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
}

func TestAvailableSlots_EditKeepsOriginalSlotInsideCutoff(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	// 09:30 is 15 minutes away: inside the one hour cutoff.
	now := at(d, 9, 15)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
	}

	slots := s.AvailableSlots(d, records, "a1", now)
	assert.Contains(t, slots, "09:30")
}

func TestAvailableSlots_CutoffAppliesOnlyToday(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)

	// Today at 09:10: 09:00, 09:30 and 10:00 all start before 10:10.
	now := at(d, 9, 10)
	slots := s.AvailableSlots(d, nil, "", now)
	assert.Equal(t, []string{"10:30"}, slots)

	// Same clock, future day: no cutoff at all.
	tomorrow := day(2026, 9, 11)
	slots = s.AvailableSlots(tomorrow, nil, "", now)
	assert.Equal(t, s.Catalog(), slots)
}

func TestAvailableSlots_UnknownExcludeIDIsNoop(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	now := at(day(2026, 9, 1), 12, 0)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
	}

	assert.Equal(t,
		s.AvailableSlots(d, records, "", now),
		s.AvailableSlots(d, records, "nope", now),
	)
}

func TestAvailableSlots_PureAndDeterministic(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	now := at(d, 8, 45)

	records := []Record{
		{ID: "a1", StartTime: at(d, 10, 0), Kind: KindBooking},
		{ID: "b1", StartTime: at(d, 10, 30), Kind: KindBlock},
	}
	snapshot := append([]Record(nil), records...)

	first := s.AvailableSlots(d, records, "", now)
	second := s.AvailableSlots(d, records, "", now)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}

func TestAvailableSlots_EmptyDayIsNotAnError(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	now := at(day(2026, 9, 1), 12, 0)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 0), Kind: KindBooking},
		{ID: "a2", StartTime: at(d, 9, 30), Kind: KindBooking},
		{ID: "a3", StartTime: at(d, 10, 0), Kind: KindBooking},
		{ID: "a4", StartTime: at(d, 10, 30), Kind: KindBooking},
	}

	assert.Empty(t, s.AvailableSlots(d, records, "", now))
}

func TestIsDayFullyBlocked(t *testing.T) {
	catalog := []string{"09:00", "09:30"}
	s := New(catalog, time.UTC, time.Hour)
	d := day(2026, 9, 10)

	// Real booking at 09:00, manual block at 09:30: fully blocked.
	mixed := []Record{
		{ID: "a1", StartTime: at(d, 9, 0), Kind: KindBooking},
		{ID: "b1", StartTime: at(d, 9, 30), Kind: KindBlock},
	}
	assert.True(t, s.IsDayFullyBlocked(d, mixed))

	// Empty day: nothing blocked.
	assert.False(t, s.IsDayFullyBlocked(d, nil))

	// Only bookings, no free slots left: nothing to unblock.
	full := []Record{
		{ID: "a1", StartTime: at(d, 9, 0), Kind: KindBooking},
		{ID: "a2", StartTime: at(d, 9, 30), Kind: KindBooking},
	}
	assert.False(t, s.IsDayFullyBlocked(d, full))

	// One block, one free slot: not fully blocked.
	partial := []Record{
		{ID: "b1", StartTime: at(d, 9, 0), Kind: KindBlock},
	}
	assert.False(t, s.IsDayFullyBlocked(d, partial))

	// All blocks: fully blocked.
	allBlocks := []Record{
		{ID: "b1", StartTime: at(d, 9, 0), Kind: KindBlock},
		{ID: "b2", StartTime: at(d, 9, 30), Kind: KindBlock},
	}
	assert.True(t, s.IsDayFullyBlocked(d, allBlocks))
}

func TestBlockDay_SkipsOccupiedSlots(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
	}

	times := s.BlockDay(d, records)
	require.Len(t, times, 3)
	assert.Equal(t, at(d, 9, 0), times[0])
	assert.Equal(t, at(d, 10, 0), times[1])
	assert.Equal(t, at(d, 10, 30), times[2])
}

func TestBlockDay_IdempotentAfterCommit(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 30), Kind: KindBooking},
	}

	// Commit every returned timestamp as a block, then re-run.
	for i, ts := range s.BlockDay(d, records) {
		records = append(records, Record{
			ID:        "b" + string(rune('1'+i)),
			StartTime: ts,
			Kind:      KindBlock,
		})
	}

	assert.Empty(t, s.BlockDay(d, records))
	assert.True(t, s.IsDayFullyBlocked(d, records))
}

func TestUnblockDay_ReturnsOnlyManualBlocks(t *testing.T) {
	s := testScheduler(t)
	d := day(2026, 9, 10)
	other := day(2026, 9, 11)

	records := []Record{
		{ID: "a1", StartTime: at(d, 9, 0), Kind: KindBooking},
		{ID: "b1", StartTime: at(d, 9, 30), Kind: KindBlock},
		{ID: "b2", StartTime: at(d, 10, 0), Kind: KindBlock},
		{ID: "b3", StartTime: at(other, 9, 0), Kind: KindBlock},
	}

	ids := s.UnblockDay(d, records)
	assert.ElementsMatch(t, []string{"b1", "b2"}, ids)
}

func TestSlotTime_UsesBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	catalog, err := BuildCatalog("09:00", "10:00", 30*time.Minute)
	require.NoError(t, err)
	s := New(catalog, loc, time.Hour)

	d := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	slot := s.SlotTime(d, "09:30")

	assert.Equal(t, 9, slot.Hour())
	assert.Equal(t, 30, slot.Minute())
	assert.Equal(t, loc, slot.Location())
	assert.Equal(t, "09:30", s.SlotLabel(slot))
}
