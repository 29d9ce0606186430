package schedule

import (
	"testing"
	"time"

	"github.com/jfarias/avicontrol/internal/model"
)

// now is a fixed reference instant; classification must depend only on
// calendar dates, so the odd hour is deliberate.
var now = time.Date(2025, time.March, 10, 17, 30, 0, 0, time.UTC)

func TestClassifyCompletedIgnoresDate(t *testing.T) {
	overdue := model.NewDate(2025, time.February, 1)
	got := Classify(model.EventoCompletado, overdue, now)

	if got.Category != CategoryCompleted {
		t.Errorf("category = %v, want CategoryCompleted", got.Category)
	}
	if got.Label != "Completed" {
		t.Errorf("label = %q, want %q", got.Label, "Completed")
	}
}

func TestClassifyDueToday(t *testing.T) {
	today := model.NewDate(2025, time.March, 10)
	got := Classify(model.EventoPendiente, today, now)

	if got.Category != CategoryDueToday {
		t.Errorf("category = %v, want CategoryDueToday", got.Category)
	}
	if got.Label != "Due today" {
		t.Errorf("label = %q, want %q", got.Label, "Due today")
	}
}

func TestClassifyLaterTodayIsNotOverdue(t *testing.T) {
	// The reference instant is 17:30; a same-day event must still read
	// as due today because distance is measured in whole calendar days.
	today := model.NewDate(2025, time.March, 10)
	got := Classify(model.EventoPendiente, today, now)

	if got.Category == CategoryOverdue {
		t.Error("same-day event classified overdue")
	}
}

func TestClassifyOverdue(t *testing.T) {
	twoDaysAgo := model.NewDate(2025, time.March, 8)
	got := Classify(model.EventoPendiente, twoDaysAgo, now)

	if got.Category != CategoryOverdue {
		t.Errorf("category = %v, want CategoryOverdue", got.Category)
	}
	if got.Label != "Overdue (2 days)" {
		t.Errorf("label = %q, want %q", got.Label, "Overdue (2 days)")
	}
	if got.DaysUntil != -2 {
		t.Errorf("daysUntil = %d, want -2", got.DaysUntil)
	}
}

func TestClassifyUpcomingBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		days     int
		category Category
		label    string
	}{
		{"tomorrow", 1, CategoryUpcomingSoon, "In 1 days"},
		{"soon edge", 3, CategoryUpcomingSoon, "In 3 days"},
		{"past soon edge", 4, CategoryUpcomingLater, "In 4 days"},
		{"far out", 30, CategoryUpcomingLater, "In 30 days"},
	}

	base := model.DateOf(now)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(model.EventoPendiente, base.AddDays(tc.days), now)
			if got.Category != tc.category {
				t.Errorf("category = %v, want %v", got.Category, tc.category)
			}
			if got.Label != tc.label {
				t.Errorf("label = %q, want %q", got.Label, tc.label)
			}
		})
	}
}

func TestClassifyVencidoStateStillDerivedFromDate(t *testing.T) {
	// The server marks stale events "vencido" but the display status is
	// always derived from the scheduled date, not the server flag.
	yesterday := model.DateOf(now).AddDays(-1)
	got := Classify(model.EventoVencido, yesterday, now)

	if got.Category != CategoryOverdue {
		t.Errorf("category = %v, want CategoryOverdue", got.Category)
	}
}

func TestProgressHalfway(t *testing.T) {
	pct, ok := Progress(15, 30)
	if !ok {
		t.Fatal("progress reported undefined for a 30-day cycle")
	}
	if pct != 50 {
		t.Errorf("pct = %v, want 50", pct)
	}
}

func TestProgressClamps(t *testing.T) {
	pct, _ := Progress(-3, 30)
	if pct != 0 {
		t.Errorf("negative age: pct = %v, want 0", pct)
	}
	pct, _ = Progress(45, 30)
	if pct != 100 {
		t.Errorf("overrun cycle: pct = %v, want 100", pct)
	}
}

func TestProgressUndefinedWithoutTotal(t *testing.T) {
	if _, ok := Progress(10, 0); ok {
		t.Error("zero total reported defined progress")
	}
	if _, ok := Progress(10, -5); ok {
		t.Error("negative total reported defined progress")
	}
}

func TestProgressMonotonic(t *testing.T) {
	prev := -1.0
	for age := 0; age <= 40; age++ {
		pct, ok := Progress(age, 30)
		if !ok {
			t.Fatalf("age %d reported undefined", age)
		}
		if pct < prev {
			t.Fatalf("pct decreased at age %d: %v < %v", age, pct, prev)
		}
		prev = pct
	}
}

func TestCycleProgress(t *testing.T) {
	lote := model.Lote{
		StartDate:         model.NewDate(2025, time.March, 1),
		EstimatedExitDate: model.NewDate(2025, time.March, 31),
	}

	pct, ok := CycleProgress(lote, 15)
	if !ok {
		t.Fatal("progress reported undefined despite an exit date")
	}
	if pct != 50 {
		t.Errorf("pct = %v, want 50", pct)
	}
}

func TestCycleProgressWithoutExitDate(t *testing.T) {
	lote := model.Lote{StartDate: model.NewDate(2025, time.March, 1)}
	if _, ok := CycleProgress(lote, 15); ok {
		t.Error("missing exit date reported defined progress")
	}
}
