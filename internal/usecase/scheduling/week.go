package scheduling

import (
	"context"
	"time"

	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/dto"
)

// GetWeek assembles the weekly calendar grid: the appointments of each
// day from Monday onward, plus the fully-blocked flag driving the
// block/unblock toggle.
type GetWeek struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
}

func NewGetWeek(repo schedule.Repository, sched *schedule.Scheduler) *GetWeek {
	return &GetWeek{repo: repo, sched: sched}
}

func (uc *GetWeek) Execute(
	ctx context.Context,
	anchor time.Time,
) (*dto.WeekDTO, error) {

	weekStart := startOfWeek(anchor.In(uc.sched.Location()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	rows, err := uc.repo.ListRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	records := schedule.Records(rows)

	week := &dto.WeekDTO{
		WeekStart: weekStart.Format(dateLayout),
		Days:      make([]dto.DayDTO, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		dayView := dto.DayDTO{
			Date:         day.Format(dateLayout),
			FullyBlocked: uc.sched.IsDayFullyBlocked(day, records),
			Appointments: []dto.AppointmentDTO{},
		}

		for _, ap := range rows {
			if !uc.sched.SameDay(ap.StartTime, day) {
				continue
			}
			dayView.Appointments = append(dayView.Appointments, dto.AppointmentDTO{
				ID:           ap.ID,
				CustomerID:   ap.CustomerID,
				CustomerName: ap.CustomerName,
				Kind:         ap.Kind,
				Slot:         uc.sched.SlotLabel(ap.StartTime),
				DateTime:     ap.StartTime,
				Notes:        ap.Notes,
			})
		}

		week.Days = append(week.Days, dayView)
	}

	return week, nil
}

// startOfWeek returns the Monday of t's week, at midnight.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
