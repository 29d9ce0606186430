// Package schedule derives display state for a batch's care schedule:
// per-event urgency classification and overall cycle progress. It is
// pure computation over data the caller has already fetched, so it can
// be tested without any network involvement.
package schedule

import (
	"fmt"
	"time"

	"github.com/jfarias/avicontrol/internal/model"
)

// Category is the display urgency bucket for a schedule event.
type Category int

const (
	CategoryCompleted Category = iota
	CategoryDueToday
	CategoryOverdue
	CategoryUpcomingSoon
	CategoryUpcomingLater
)

// upcomingSoonDays is the widest gap, in days, still considered "soon".
const upcomingSoonDays = 3

// DisplayStatus is the derived presentation state of one event. It is
// never persisted; the server's pending/completed state stays
// authoritative.
type DisplayStatus struct {
	Label     string
	Category  Category
	DaysUntil int
}

// Classify maps an event's server state and scheduled date to a display
// status relative to now. Completed events short-circuit regardless of
// date. For the rest, the distance is measured in whole calendar days,
// so a time later today still counts as due today rather than overdue.
// Total over all inputs; there is no error path.
func Classify(estado string, scheduled model.Date, now time.Time) DisplayStatus {
	if estado == model.EventoCompletado {
		return DisplayStatus{Label: "Completed", Category: CategoryCompleted}
	}

	daysUntil := scheduled.DaysSince(model.DateOf(now))

	switch {
	case daysUntil == 0:
		return DisplayStatus{Label: "Due today", Category: CategoryDueToday}
	case daysUntil < 0:
		return DisplayStatus{
			Label:     fmt.Sprintf("Overdue (%d days)", -daysUntil),
			Category:  CategoryOverdue,
			DaysUntil: daysUntil,
		}
	case daysUntil <= upcomingSoonDays:
		return DisplayStatus{
			Label:     fmt.Sprintf("In %d days", daysUntil),
			Category:  CategoryUpcomingSoon,
			DaysUntil: daysUntil,
		}
	default:
		return DisplayStatus{
			Label:     fmt.Sprintf("In %d days", daysUntil),
			Category:  CategoryUpcomingLater,
			DaysUntil: daysUntil,
		}
	}
}

// ClassifyEvent is Classify applied to a schedule event.
func ClassifyEvent(e model.EventoCronograma, now time.Time) DisplayStatus {
	return Classify(e.Estado, e.ScheduledDate, now)
}

// Progress returns the cycle completion percentage for a batch that is
// ageDays into a totalDays cycle. Clamped to [0, 100]: a recorded age
// preceding the start date reads as 0 rather than a negative
// percentage, and an overrun cycle caps at 100. ok is false when
// totalDays is not positive, which happens when the batch has no
// estimated exit date; progress is undefined then.
func Progress(ageDays, totalDays int) (pct float64, ok bool) {
	if totalDays <= 0 {
		return 0, false
	}
	pct = float64(ageDays) / float64(totalDays) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

// CycleProgress computes a batch's cycle progress from its dates and
// the server-supplied age in days. ok is false when the batch has no
// estimated exit date.
func CycleProgress(lote model.Lote, ageDays int) (pct float64, ok bool) {
	if lote.EstimatedExitDate.IsZero() {
		return 0, false
	}
	total := lote.EstimatedExitDate.DaysSince(lote.StartDate)
	if total < 0 {
		total = -total
	}
	return Progress(ageDays, total)
}
