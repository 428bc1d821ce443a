// file: internals/features/school/classes/class_schedules/scheduling/types.go
package scheduling

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"

	DefaultIntervalWeeks = 1
	MaxIntervalWeeks     = 4
)

/* =========================
   Date helpers (civil date, UTC midnight)
========================= */

// DateOnly menormalkan t menjadi tanggal sipil (00:00 UTC) supaya aman dibandingkan.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return DateOnly(t), nil
}

func dateKey(t time.Time) string { return t.Format(DateLayout) }

/* =========================
   Window
========================= */

// Window adalah rentang tanggal inklusif [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) Window {
	return Window{Start: DateOnly(start), End: DateOnly(end)}
}

func (w Window) IsEmpty() bool { return w.End.Before(w.Start) }

func (w Window) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Clamp mempersempit window dengan sub-range opsional.
func (w Window) Clamp(start, end *time.Time) Window {
	out := w
	if start != nil && DateOnly(*start).After(out.Start) {
		out.Start = DateOnly(*start)
	}
	if end != nil && DateOnly(*end).Before(out.End) {
		out.End = DateOnly(*end)
	}
	return out
}

/* =========================
   Pattern & Candidate
========================= */

// Pattern adalah aturan mingguan: hari + slot + ruang + pengajar.
type Pattern struct {
	DayOfWeek     time.Weekday
	TimeSlotID    int64
	RoomID        int64
	LecturerID    int64
	SubRangeStart *time.Time
	SubRangeEnd   *time.Time
	IntervalWeeks int
}

func (p Pattern) interval() int {
	if p.IntervalWeeks <= 0 {
		return DefaultIntervalWeeks
	}
	return p.IntervalWeeks
}

// Candidate is one concrete (date, slot, room, lecturer) occurrence that is not persisted yet.
type Candidate struct {
	PatternIndex int
	Date         time.Time
	TimeSlotID   int64
	RoomID       int64
	LecturerID   int64
}

type SkippedDate struct {
	PatternIndex int
	Date         time.Time
}

type Expansion struct {
	Candidates []Candidate
	Skipped    []SkippedDate
}

// Span mengembalikan tanggal paling awal & paling akhir dari kandidat.
func (e Expansion) Span() (Window, bool) {
	if len(e.Candidates) == 0 {
		return Window{}, false
	}
	w := Window{Start: e.Candidates[0].Date, End: e.Candidates[0].Date}
	for _, c := range e.Candidates[1:] {
		if c.Date.Before(w.Start) {
			w.Start = c.Date
		}
		if c.Date.After(w.End) {
			w.End = c.Date
		}
	}
	return w, true
}

/* =========================
   Persisted lesson snapshot (read side)
========================= */

type ExistingLesson struct {
	ID         int64
	ClassID    int64
	Date       time.Time
	TimeSlotID int64
	RoomID     int64
	LecturerID int64
}

/* =========================
   Request
========================= */

type Request struct {
	SemesterID  int64
	ClassID     int64
	LecturerID  int64
	Patterns    []Pattern
	RequestedBy string
}
