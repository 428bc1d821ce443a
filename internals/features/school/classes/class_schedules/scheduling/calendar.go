// file: internals/features/school/classes/class_schedules/scheduling/calendar.go
package scheduling

import (
	"sort"
	"time"
)

// HolidaySet adalah himpunan tanggal libur (key "YYYY-MM-DD").
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...time.Time) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s HolidaySet) Add(d time.Time) { s[dateKey(DateOnly(d))] = struct{}{} }

func (s HolidaySet) Contains(d time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[dateKey(DateOnly(d))]
	return ok
}

// Dates returns the set sorted ascending.
func (s HolidaySet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for k := range s {
		if t, err := ParseDate(k); err == nil {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// HolidayRule adalah satu baris libur: rentang [Start, End], opsional berulang tiap tahun.
type HolidayRule struct {
	Start           time.Time
	End             time.Time
	RecurringYearly bool
}

// BuildHolidaySet memproyeksikan rules ke dalam window semester.
// Tanggal di luar window tidak dimasukkan.
func BuildHolidaySet(window Window, rules []HolidayRule) HolidaySet {
	set := HolidaySet{}
	if window.IsEmpty() {
		return set
	}
	for _, r := range rules {
		start, end := DateOnly(r.Start), DateOnly(r.End)
		if end.Before(start) {
			start, end = end, start
		}
		if !r.RecurringYearly {
			addRange(set, window, start, end)
			continue
		}
		// proyeksikan rentang ke setiap tahun yang bersinggungan dengan window
		span := end.Year() - start.Year()
		for y := window.Start.Year() - span; y <= window.End.Year(); y++ {
			s, e := startInYear(start, y), endInYear(end, y+span)
			if e.Before(s) {
				continue
			}
			addRange(set, window, s, e)
		}
	}
	return set
}

// startInYear: 29 Feb di tahun non-kabisat → 1 Mar (hari pertama yang ada setelahnya).
func startInYear(d time.Time, y int) time.Time {
	return time.Date(y, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// endInYear: 29 Feb di tahun non-kabisat → 28 Feb (hari terakhir yang ada sebelumnya).
// Libur satu hari 29 Feb jadi kosong di tahun non-kabisat.
func endInYear(d time.Time, y int) time.Time {
	t := time.Date(y, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if t.Month() != d.Month() {
		t = time.Date(y, d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func addRange(set HolidaySet, window Window, start, end time.Time) {
	if start.Before(window.Start) {
		start = window.Start
	}
	if end.After(window.End) {
		end = window.End
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		set.Add(d)
	}
}
