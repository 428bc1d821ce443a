package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildHolidaySet(t *testing.T) {
	sem := semester2025(t)

	tests := []struct {
		name  string
		rules []HolidayRule
		want  []string
	}{
		{
			name:  "single day",
			rules: []HolidayRule{{Start: mustDate(t, "2025-02-17"), End: mustDate(t, "2025-02-17")}},
			want:  []string{"2025-02-17"},
		},
		{
			name:  "range",
			rules: []HolidayRule{{Start: mustDate(t, "2025-03-31"), End: mustDate(t, "2025-04-02")}},
			want:  []string{"2025-03-31", "2025-04-01", "2025-04-02"},
		},
		{
			name:  "clipped to semester",
			rules: []HolidayRule{{Start: mustDate(t, "2024-12-30"), End: mustDate(t, "2025-01-02")}},
			want:  []string{"2025-01-01", "2025-01-02"},
		},
		{
			name:  "outside semester",
			rules: []HolidayRule{{Start: mustDate(t, "2025-08-17"), End: mustDate(t, "2025-08-17")}},
			want:  nil,
		},
		{
			name:  "recurring yearly from an earlier year",
			rules: []HolidayRule{{Start: mustDate(t, "2020-03-29"), End: mustDate(t, "2020-03-29"), RecurringYearly: true}},
			want:  []string{"2025-03-29"},
		},
		{
			name:  "recurring range across new year",
			rules: []HolidayRule{{Start: mustDate(t, "2022-12-31"), End: mustDate(t, "2023-01-01"), RecurringYearly: true}},
			want:  []string{"2025-01-01"},
		},
		{
			name:  "recurring 29 feb has no date in a non-leap year",
			rules: []HolidayRule{{Start: mustDate(t, "2024-02-29"), End: mustDate(t, "2024-02-29"), RecurringYearly: true}},
			want:  nil,
		},
		{
			name:  "recurring range ending 29 feb stops at 28 feb",
			rules: []HolidayRule{{Start: mustDate(t, "2024-02-27"), End: mustDate(t, "2024-02-29"), RecurringYearly: true}},
			want:  []string{"2025-02-27", "2025-02-28"},
		},
		{
			name:  "recurring range starting 29 feb starts at 1 mar",
			rules: []HolidayRule{{Start: mustDate(t, "2024-02-29"), End: mustDate(t, "2024-03-02"), RecurringYearly: true}},
			want:  []string{"2025-03-01", "2025-03-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := BuildHolidaySet(sem, tt.rules)
			var got []string
			for _, d := range set.Dates() {
				got = append(got, d.Format(DateLayout))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHolidaySet_NilIsEmpty(t *testing.T) {
	var s HolidaySet
	assert.False(t, s.Contains(mustDate(t, "2025-01-01")))
}

func TestBuildHolidaySet_LeapDayInLeapYear(t *testing.T) {
	sem := NewWindow(mustDate(t, "2028-01-01"), mustDate(t, "2028-04-30"))
	set := BuildHolidaySet(sem, []HolidayRule{
		{Start: mustDate(t, "2024-02-29"), End: mustDate(t, "2024-02-29"), RecurringYearly: true},
	})

	assert.True(t, set.Contains(mustDate(t, "2028-02-29")))
	assert.False(t, set.Contains(mustDate(t, "2028-03-01")))
	assert.Len(t, set, 1)
}

func TestExpand_LeapDayHolidayKeepsMarchFirst(t *testing.T) {
	sem := semester2025(t)
	holidays := BuildHolidaySet(sem, []HolidayRule{
		{Start: mustDate(t, "2024-02-29"), End: mustDate(t, "2024-02-29"), RecurringYearly: true},
	})

	// 2025-03-01 hari Sabtu
	e := Expand(sem, holidays, 0, Pattern{DayOfWeek: time.Saturday, TimeSlotID: 1, RoomID: 1, LecturerID: 1})

	assert.Empty(t, e.Skipped)
	var found bool
	for _, c := range e.Candidates {
		if c.Date.Equal(mustDate(t, "2025-03-01")) {
			found = true
		}
	}
	assert.True(t, found)
}
