package schedule

import (
	"fmt"
	"time"
)

const slotLayout = "15:04"

// BuildCatalog expands business hours into the fixed, ordered list of
// bookable slot labels ("09:00", "09:30", ...). The close time itself is
// not a slot. The catalog is day-independent and built once at startup.
func BuildCatalog(open, close string, slot time.Duration) ([]string, error) {
	if slot <= 0 {
		return nil, fmt.Errorf("schedule: slot duration must be positive, got %s", slot)
	}

	start, err := time.Parse(slotLayout, open)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid open time %q: %w", open, err)
	}

	end, err := time.Parse(slotLayout, close)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid close time %q: %w", close, err)
	}

	if !end.After(start) {
		return nil, fmt.Errorf("schedule: close %q must be after open %q", close, open)
	}

	var labels []string
	for t := start; t.Before(end); t = t.Add(slot) {
		labels = append(labels, t.Format(slotLayout))
	}

	return labels, nil
}
