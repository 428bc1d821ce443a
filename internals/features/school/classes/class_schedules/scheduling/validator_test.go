package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CrossClassRoomCollision(t *testing.T) {
	// kelas A sudah pakai ruang 101 Senin 2025-03-03 slot 1
	existing := []ExistingLesson{{ID: 500, ClassID: 1, Date: mustDate(t, "2025-03-03"), TimeSlotID: 1, RoomID: 101, LecturerID: 70}}
	candidates := []Candidate{{Date: mustDate(t, "2025-03-03"), TimeSlotID: 1, RoomID: 101, LecturerID: 80}}

	got := Validate(2, candidates, existing)

	require.Len(t, got, 1)
	assert.Equal(t, ConflictRoom, got[0].Kind)
	assert.Equal(t, int64(101), got[0].ConflictingResourceID)
	require.NotNil(t, got[0].ConflictingLessonID)
	assert.Equal(t, int64(500), *got[0].ConflictingLessonID)
}

func TestValidate_Kinds(t *testing.T) {
	d := mustDate(t, "2025-03-03")

	t.Run("lecturer busy in another class", func(t *testing.T) {
		existing := []ExistingLesson{{ID: 1, ClassID: 9, Date: d, TimeSlotID: 2, RoomID: 50, LecturerID: 7}}
		got := Validate(1, []Candidate{{Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7}}, existing)
		require.Len(t, got, 1)
		assert.Equal(t, ConflictLecturer, got[0].Kind)
		assert.Equal(t, int64(7), got[0].ConflictingResourceID)
	})

	t.Run("class already has a lesson", func(t *testing.T) {
		existing := []ExistingLesson{{ID: 3, ClassID: 1, Date: d, TimeSlotID: 2, RoomID: 50, LecturerID: 6}}
		got := Validate(1, []Candidate{{Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7}}, existing)
		require.Len(t, got, 1)
		assert.Equal(t, ConflictDuplicate, got[0].Kind)
		assert.Equal(t, ResourceClass, got[0].Resource)
		assert.Equal(t, int64(1), got[0].ConflictingResourceID)
	})

	t.Run("internal overlap on room", func(t *testing.T) {
		got := Validate(1, []Candidate{
			{PatternIndex: 0, Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7},
			{PatternIndex: 1, Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 8},
		}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, ConflictInternal, got[0].Kind)
		assert.Equal(t, ResourceRoom, got[0].Resource)
		assert.Nil(t, got[0].ConflictingLessonID)
		assert.Equal(t, 1, got[0].PatternIndex)
	})

	t.Run("internal overlap on class only", func(t *testing.T) {
		got := Validate(1, []Candidate{
			{PatternIndex: 0, Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7},
			{PatternIndex: 1, Date: d, TimeSlotID: 2, RoomID: 52, LecturerID: 8},
		}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, ResourceClass, got[0].Resource)
	})

	t.Run("three patterns on one slot name the pattern they hit", func(t *testing.T) {
		got := Validate(1, []Candidate{
			{PatternIndex: 0, Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7},
			{PatternIndex: 1, Date: d, TimeSlotID: 2, RoomID: 52, LecturerID: 8},
			{PatternIndex: 2, Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 9},
		}, nil)
		require.Len(t, got, 2)
		for i, want := range []int{1, 2} {
			assert.Equal(t, ConflictInternal, got[i].Kind)
			assert.Equal(t, want, got[i].PatternIndex)
			require.NotNil(t, got[i].ConflictingPatternIndex)
			assert.Equal(t, 0, *got[i].ConflictingPatternIndex)
		}
	})

	t.Run("different slot is free", func(t *testing.T) {
		existing := []ExistingLesson{{ID: 1, ClassID: 1, Date: d, TimeSlotID: 3, RoomID: 51, LecturerID: 7}}
		assert.Empty(t, Validate(1, []Candidate{{Date: d, TimeSlotID: 2, RoomID: 51, LecturerID: 7}}, existing))
	})
}

func TestValidate_OrderingIsDeterministic(t *testing.T) {
	d1, d2 := mustDate(t, "2025-03-03"), mustDate(t, "2025-03-10")
	existing := []ExistingLesson{
		{ID: 11, ClassID: 1, Date: d2, TimeSlotID: 1, RoomID: 101, LecturerID: 7},
		{ID: 10, ClassID: 2, Date: d1, TimeSlotID: 1, RoomID: 101, LecturerID: 8},
	}
	candidates := []Candidate{
		{Date: d2, TimeSlotID: 1, RoomID: 101, LecturerID: 7},
		{Date: d1, TimeSlotID: 1, RoomID: 101, LecturerID: 7},
		{Date: d1, TimeSlotID: 1, RoomID: 102, LecturerID: 9},
	}

	got := Validate(1, candidates, existing)

	kinds := make([]ConflictKind, 0, len(got))
	for _, c := range got {
		kinds = append(kinds, c.Kind)
	}
	// internal (d1) → room d1, room d2 → lecturer d2 → duplicate d2
	assert.Equal(t, []ConflictKind{
		ConflictInternal,
		ConflictRoom,
		ConflictRoom,
		ConflictLecturer,
		ConflictDuplicate,
	}, kinds)
	assert.Equal(t, d1, got[1].Date)
	assert.Equal(t, d2, got[2].Date)

	// input yang sama → laporan yang sama
	assert.Equal(t, got, Validate(1, candidates, existing))
}

func TestResourceLockKeys(t *testing.T) {
	d := mustDate(t, "2025-03-03")
	cs := []Candidate{
		{Date: d, TimeSlotID: 1, RoomID: 101, LecturerID: 7},
		{Date: d, TimeSlotID: 1, RoomID: 101, LecturerID: 7},
		{Date: d.Add(7 * 24 * time.Hour), TimeSlotID: 1, RoomID: 101, LecturerID: 7},
	}

	keys := ResourceLockKeys(1, cs)

	assert.Len(t, keys, 6)
	assert.IsIncreasing(t, keys)
	assert.Equal(t, keys, ResourceLockKeys(1, []Candidate{cs[2], cs[0]}))
}
