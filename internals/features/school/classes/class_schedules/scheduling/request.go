// file: internals/features/school/classes/class_schedules/scheduling/request.go
package scheduling

import "fmt"

// Validate memeriksa bentuk request sebelum expand. Referensi ke DB (semester, kelas,
// slot, ruang) dicek di service.
func (r Request) Validate() error {
	ve := NewValidationError("invalid schedule request")

	if r.SemesterID <= 0 {
		ve.Add("semesterId", "must be a positive id")
	}
	if r.ClassID <= 0 {
		ve.Add("classId", "must be a positive id")
	}
	if r.LecturerID <= 0 {
		ve.Add("lecturerId", "must be a positive id")
	}
	if len(r.Patterns) == 0 {
		ve.Add("patterns", "at least one pattern is required")
	}

	for i, p := range r.Patterns {
		f := func(name string) string { return fmt.Sprintf("patterns[%d].%s", i, name) }

		if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
			ve.Add(f("dayOfWeek"), "must be between 0 (Sunday) and 6 (Saturday)")
		}
		if p.TimeSlotID <= 0 {
			ve.Add(f("timeSlotId"), "must be a positive id")
		}
		if p.RoomID <= 0 {
			ve.Add(f("roomId"), "must be a positive id")
		}
		if p.LecturerID < 0 {
			ve.Add(f("lecturerId"), "must be a positive id when set")
		}
		if p.IntervalWeeks < 0 || p.IntervalWeeks > MaxIntervalWeeks {
			ve.Add(f("intervalWeeks"), fmt.Sprintf("must be between 1 and %d", MaxIntervalWeeks))
		}
		if p.SubRangeStart != nil && p.SubRangeEnd != nil && DateOnly(*p.SubRangeStart).After(DateOnly(*p.SubRangeEnd)) {
			ve.Add(f("subRangeEnd"), "must not be before subRangeStart")
		}
	}

	if ve.HasFields() {
		return ve
	}
	return nil
}
