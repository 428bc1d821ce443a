// file: internals/features/school/classes/class_schedules/scheduling/expander.go
package scheduling

import "time"

/* =========================================================
   PATTERN EXPANDER (pure)
   - window = semester ∩ sub-range
   - tanggal pertama = hari >= window.Start dengan weekday cocok
   - lompat 7 × intervalWeeks hari sampai lewat window.End
   - tanggal libur di-skip & dicatat (bukan error)
========================================================= */

// firstOnOrAfter mengembalikan tanggal pertama >= from yang jatuh di weekday dow.
func firstOnOrAfter(from time.Time, dow time.Weekday) time.Time {
	delta := (int(dow) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

// Expand menghasilkan kandidat untuk satu pattern. LecturerID pada pattern dipakai apa adanya.
func Expand(semester Window, holidays HolidaySet, idx int, p Pattern) Expansion {
	var out Expansion

	w := semester.Clamp(p.SubRangeStart, p.SubRangeEnd)
	if w.IsEmpty() {
		return out
	}

	step := 7 * p.interval()
	for d := firstOnOrAfter(w.Start, p.DayOfWeek); !d.After(w.End); d = d.AddDate(0, 0, step) {
		if holidays.Contains(d) {
			out.Skipped = append(out.Skipped, SkippedDate{PatternIndex: idx, Date: d})
			continue
		}
		out.Candidates = append(out.Candidates, Candidate{
			PatternIndex: idx,
			Date:         d,
			TimeSlotID:   p.TimeSlotID,
			RoomID:       p.RoomID,
			LecturerID:   p.LecturerID,
		})
	}
	return out
}

// ExpandAll meng-expand semua pattern secara independen lalu menggabungkan hasilnya
// sesuai urutan pattern. Pattern tanpa lecturer memakai defaultLecturer.
func ExpandAll(semester Window, holidays HolidaySet, patterns []Pattern, defaultLecturer int64) Expansion {
	var all Expansion
	for i, p := range patterns {
		if p.LecturerID <= 0 {
			p.LecturerID = defaultLecturer
		}
		e := Expand(semester, holidays, i, p)
		all.Candidates = append(all.Candidates, e.Candidates...)
		all.Skipped = append(all.Skipped, e.Skipped...)
	}
	return all
}
