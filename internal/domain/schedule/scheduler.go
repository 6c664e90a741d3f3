package schedule

import "time"

// ===============================
// Record Kind
// ===============================

type Kind string

const (
	KindBooking Kind = "booking"
	KindBlock   Kind = "block"
)

// Record is the scheduler's view of one appointment row: a booking made by
// a customer or a manual block placed by staff. Both occupy one slot.
type Record struct {
	ID        string
	StartTime time.Time
	Kind      Kind
}

// ===============================
// Scheduler
// ===============================

// Scheduler computes slot availability and day block state over a
// caller-supplied snapshot of records. All methods are pure: they never
// mutate their inputs and are deterministic for a fixed now.
type Scheduler struct {
	catalog    []string
	loc        *time.Location
	minAdvance time.Duration
}

func New(catalog []string, loc *time.Location, minAdvance time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if minAdvance <= 0 {
		minAdvance = time.Hour
	}
	return &Scheduler{
		catalog:    append([]string(nil), catalog...),
		loc:        loc,
		minAdvance: minAdvance,
	}
}

func (s *Scheduler) Catalog() []string {
	return append([]string(nil), s.catalog...)
}

func (s *Scheduler) Location() *time.Location {
	return s.loc
}

func (s *Scheduler) MinAdvance() time.Duration {
	return s.minAdvance
}

func (s *Scheduler) HasSlot(label string) bool {
	for _, l := range s.catalog {
		if l == label {
			return true
		}
	}
	return false
}

// SlotTime anchors a slot label on a calendar day, in the business
// timezone. The time-of-day component of day is ignored.
func (s *Scheduler) SlotTime(day time.Time, label string) time.Time {
	t, err := time.Parse(slotLayout, label)
	if err != nil {
		return time.Time{}
	}
	d := day.In(s.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, s.loc)
}

// SlotLabel formats a record timestamp back into its catalog label.
func (s *Scheduler) SlotLabel(t time.Time) string {
	return t.In(s.loc).Format(slotLayout)
}

func (s *Scheduler) SameDay(a, b time.Time) bool {
	a = a.In(s.loc)
	b = b.In(s.loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayBounds returns the [start, end) interval covering day in the
// business timezone.
func (s *Scheduler) DayBounds(day time.Time) (time.Time, time.Time) {
	d := day.In(s.loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	return start, start.Add(24 * time.Hour)
}

// AvailableSlots returns the catalog slots on day that can be offered to a
// new booking, in catalog order. Records on other days are ignored.
//
// excludeID identifies an appointment currently being edited: its own row
// is not counted as occupying a slot, and its original slot is always
// offered even when it falls inside the min-advance cutoff. An excludeID
// matching no record has no effect.
//
// On the current day, slots starting before now+minAdvance are withheld.
func (s *Scheduler) AvailableSlots(day time.Time, records []Record, excludeID string, now time.Time) []string {
	occupied := make(map[string]struct{}, len(records))
	originalSlot := ""

	for _, r := range records {
		if !s.SameDay(r.StartTime, day) {
			continue
		}
		label := s.SlotLabel(r.StartTime)
		if excludeID != "" && r.ID == excludeID {
			originalSlot = label
			continue
		}
		occupied[label] = struct{}{}
	}

	cutoff := now.Add(s.minAdvance)
	today := s.SameDay(day, now)

	out := make([]string, 0, len(s.catalog))
	for _, label := range s.catalog {
		if label == originalSlot {
			out = append(out, label)
			continue
		}
		if _, taken := occupied[label]; taken {
			continue
		}
		if today && s.SlotTime(day, label).Before(cutoff) {
			continue
		}
		out = append(out, label)
	}

	return out
}

// IsDayFullyBlocked reports whether the whole day is closed by manual
// blocks. Slots taken by real bookings are set aside first: if bookings
// alone fill the catalog there is nothing to unblock, so the result is
// false. Otherwise every remaining slot must carry a manual block.
func (s *Scheduler) IsDayFullyBlocked(day time.Time, records []Record) bool {
	booked := make(map[string]struct{})
	blocked := make(map[string]struct{})

	for _, r := range records {
		if !s.SameDay(r.StartTime, day) {
			continue
		}
		label := s.SlotLabel(r.StartTime)
		if r.Kind == KindBlock {
			blocked[label] = struct{}{}
		} else {
			booked[label] = struct{}{}
		}
	}

	remaining := 0
	for _, label := range s.catalog {
		if _, taken := booked[label]; taken {
			continue
		}
		remaining++
		if _, ok := blocked[label]; !ok {
			return false
		}
	}

	return remaining > 0
}

// BlockDay returns the timestamps of every catalog slot on day not yet
// occupied by any record. The caller commits one block per timestamp;
// re-running against the committed snapshot yields nothing.
func (s *Scheduler) BlockDay(day time.Time, records []Record) []time.Time {
	occupied := make(map[string]struct{}, len(records))
	for _, r := range records {
		if s.SameDay(r.StartTime, day) {
			occupied[s.SlotLabel(r.StartTime)] = struct{}{}
		}
	}

	var out []time.Time
	for _, label := range s.catalog {
		if _, taken := occupied[label]; taken {
			continue
		}
		out = append(out, s.SlotTime(day, label))
	}

	return out
}

// UnblockDay returns the ids of every manual block on day. Customer
// bookings are never included.
func (s *Scheduler) UnblockDay(day time.Time, records []Record) []string {
	var ids []string
	for _, r := range records {
		if r.Kind == KindBlock && s.SameDay(r.StartTime, day) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
