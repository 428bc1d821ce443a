package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/repository"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================
   In-memory store (snapshot → swap saat commit)
========================= */

type memState struct {
	lessons     []model.LessonModel
	generations []model.ScheduleGenerationModel
	nextID      int64
}

func (s memState) clone() memState {
	return memState{
		lessons:     append([]model.LessonModel(nil), s.lessons...),
		generations: append([]model.ScheduleGenerationModel(nil), s.generations...),
		nextID:      s.nextID,
	}
}

type memStore struct {
	semesters map[int64]repository.SemesterRange
	classes   map[int64]repository.ClassRef
	slots     map[int64]repository.TimeSlotRef
	rooms     map[int64]bool
	holidays  []scheduling.HolidayRule

	state memState

	failInsert    error
	txCount       int
	lockedKeys    [][]int64
	lockedClasses []int64
}

func newMemStore(t *testing.T) *memStore {
	t.Helper()
	nine, err := dbtime.Parse("09:00")
	require.NoError(t, err)
	ten, err := dbtime.Parse("10:30")
	require.NoError(t, err)
	seven, err := dbtime.Parse("07:00")
	require.NoError(t, err)

	return &memStore{
		semesters: map[int64]repository.SemesterRange{
			1: {ID: 1, Start: day(t, "2025-01-01"), End: day(t, "2025-04-30")},
			2: {ID: 2, Start: day(t, "2025-07-01"), End: day(t, "2025-12-20")},
		},
		classes: map[int64]repository.ClassRef{
			10: {ID: 10, SemesterID: 1, Slug: "kelas-7a"},
			11: {ID: 11, SemesterID: 1, Slug: "kelas-7b"},
			20: {ID: 20, SemesterID: 2, Slug: "kelas-8a"},
		},
		slots: map[int64]repository.TimeSlotRef{
			1: {ID: 1, Start: nine, End: ten},
			2: {ID: 2, Start: seven, End: nine},
		},
		rooms:    map[int64]bool{101: true, 102: true},
		holidays: []scheduling.HolidayRule{{Start: day(t, "2025-02-17"), End: day(t, "2025-02-17")}},
		state:    memState{nextID: 1},
	}
}

func (m *memStore) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	m.txCount++
	tx := &memTx{store: m, state: m.state.clone()}
	repos := repository.TxRepositories{Semesters: tx, Classes: tx, References: tx, Holidays: tx, Lessons: tx}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	m.state = tx.state
	return nil
}

type memTx struct {
	store *memStore
	state memState
}

func (t *memTx) GetSemesterRange(_ context.Context, id int64) (repository.SemesterRange, error) {
	s, ok := t.store.semesters[id]
	if !ok {
		return repository.SemesterRange{}, repository.ErrNotFound
	}
	return s, nil
}

func (t *memTx) GetClass(_ context.Context, id int64) (repository.ClassRef, error) {
	c, ok := t.store.classes[id]
	if !ok {
		return repository.ClassRef{}, repository.ErrNotFound
	}
	return c, nil
}

func (t *memTx) LockClass(_ context.Context, id int64) error {
	t.store.lockedClasses = append(t.store.lockedClasses, id)
	return nil
}

func (t *memTx) GetTimeSlots(_ context.Context, ids []int64) (map[int64]repository.TimeSlotRef, error) {
	out := map[int64]repository.TimeSlotRef{}
	for _, id := range ids {
		if s, ok := t.store.slots[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (t *memTx) ExistingRoomIDs(_ context.Context, ids []int64) (map[int64]bool, error) {
	out := map[int64]bool{}
	for _, id := range ids {
		out[id] = t.store.rooms[id]
	}
	return out, nil
}

func (t *memTx) GetHolidays(_ context.Context, _ int64, w scheduling.Window) (scheduling.HolidaySet, error) {
	return scheduling.BuildHolidaySet(w, t.store.holidays), nil
}

func (t *memTx) LockResourceKeys(_ context.Context, keys []int64) error {
	t.store.lockedKeys = append(t.store.lockedKeys, keys)
	return nil
}

func (t *memTx) GetLessonsInRange(_ context.Context, start, end time.Time) ([]scheduling.ExistingLesson, error) {
	var out []scheduling.ExistingLesson
	for _, l := range t.state.lessons {
		if l.LessonStatus == model.LessonStatusCanceled || l.LessonDate.Before(start) || l.LessonDate.After(end) {
			continue
		}
		out = append(out, scheduling.ExistingLesson{
			ID: l.LessonID, ClassID: l.LessonClassID, Date: l.LessonDate,
			TimeSlotID: l.LessonTimeSlotID, RoomID: l.LessonRoomID, LecturerID: l.LessonLecturerID,
		})
	}
	return out, nil
}

func (t *memTx) MaxMeetingNumber(_ context.Context, classID int64) (int, error) {
	n := 0
	for _, l := range t.state.lessons {
		if l.LessonClassID == classID && l.LessonMeetingNumber > n {
			n = l.LessonMeetingNumber
		}
	}
	return n, nil
}

func (t *memTx) InsertLessons(_ context.Context, rows []model.LessonModel, _ int) (int, error) {
	for i, r := range rows {
		// gagal di tengah batch: baris sebelumnya sudah masuk ke state tx
		if t.store.failInsert != nil && i == len(rows)/2 {
			return 0, t.store.failInsert
		}
		r.LessonID = t.state.nextID
		t.state.nextID++
		t.state.lessons = append(t.state.lessons, r)
	}
	return len(rows), nil
}

func (t *memTx) InsertGeneration(_ context.Context, row *model.ScheduleGenerationModel) error {
	t.state.generations = append(t.state.generations, *row)
	return nil
}

/* =========================
   Helpers
========================= */

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := scheduling.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestGenerator(store *memStore) *Generator {
	g := NewGenerator(store, GenerateOptions{TZName: "Asia/Jakarta"})
	g.newID = func() uuid.UUID { return uuid.MustParse("11111111-1111-1111-1111-111111111111") }
	return g
}

func mondayRequest(classID int64, room int64) scheduling.Request {
	return scheduling.Request{
		SemesterID: 1,
		ClassID:    classID,
		LecturerID: 7,
		Patterns:   []scheduling.Pattern{{DayOfWeek: time.Monday, TimeSlotID: 1, RoomID: room}},
	}
}

/* =========================
   Tests
========================= */

func TestGenerate_MondaysMinusHoliday(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)

	res, err := g.Generate(context.Background(), mondayRequest(10, 101))
	require.NoError(t, err)

	assert.Equal(t, 16, res.LessonsCreated)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, day(t, "2025-02-17"), res.Skipped[0].Date)

	require.Len(t, store.state.lessons, 16)
	first := store.state.lessons[0]
	assert.Equal(t, day(t, "2025-01-06"), first.LessonDate)
	assert.Equal(t, 1, first.LessonMeetingNumber)
	assert.Equal(t, "kelas-7a-meeting-1", first.LessonSlug)
	assert.Equal(t, model.LessonStatusScheduled, first.LessonStatus)
	// 09:00 WIB = 02:00 UTC
	assert.Equal(t, time.Date(2025, 1, 6, 2, 0, 0, 0, time.UTC), first.LessonStartsAt.UTC())
	assert.Equal(t, time.Date(2025, 1, 6, 3, 30, 0, 0, time.UTC), first.LessonEndsAt.UTC())
	assert.Equal(t, 16, store.state.lessons[15].LessonMeetingNumber)

	require.Len(t, store.state.generations, 1)
	assert.Equal(t, 16, store.state.generations[0].ScheduleGenerationLessonsCreated)
	assert.Equal(t, res.GenerationID, *first.LessonGenerationID)
	require.Len(t, store.lockedKeys, 1)
	assert.Len(t, store.lockedKeys[0], 16*3)
	assert.Equal(t, []int64{10}, store.lockedClasses)
}

func TestGenerate_CrossClassRoomCollision(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)

	_, err := g.Generate(context.Background(), mondayRequest(10, 101))
	require.NoError(t, err)
	before := store.state.clone()

	req := mondayRequest(11, 101)
	req.LecturerID = 8
	req.Patterns[0].SubRangeStart = ptrTime(day(t, "2025-03-03"))
	req.Patterns[0].SubRangeEnd = ptrTime(day(t, "2025-03-03"))

	_, err = g.Generate(context.Background(), req)

	var ce *scheduling.ConflictError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Conflicts, 1)
	assert.Equal(t, scheduling.ConflictRoom, ce.Conflicts[0].Kind)
	assert.Equal(t, int64(101), ce.Conflicts[0].ConflictingResourceID)
	assert.Equal(t, day(t, "2025-03-03"), ce.Conflicts[0].Date)
	assert.Equal(t, before, store.state)
}

func TestGenerate_RejectionIsIdempotent(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)
	_, err := g.Generate(context.Background(), mondayRequest(10, 101))
	require.NoError(t, err)
	before := store.state.clone()

	// kelas sama → duplicate + room + lecturer
	_, err1 := g.Generate(context.Background(), mondayRequest(10, 101))
	_, err2 := g.Generate(context.Background(), mondayRequest(10, 101))

	var c1, c2 *scheduling.ConflictError
	require.ErrorAs(t, err1, &c1)
	require.ErrorAs(t, err2, &c2)
	assert.Equal(t, c1.Conflicts, c2.Conflicts)
	assert.Len(t, c1.Conflicts, 16*3)
	assert.Equal(t, before, store.state)
}

func TestGenerate_NoPartialCommit(t *testing.T) {
	store := newMemStore(t)
	store.failInsert = errors.New("connection reset")
	g := newTestGenerator(store)

	_, err := g.Generate(context.Background(), mondayRequest(10, 101))

	var ie *scheduling.InfrastructureError
	require.ErrorAs(t, err, &ie)
	assert.False(t, ie.Retryable)
	assert.Empty(t, store.state.lessons)
	assert.Empty(t, store.state.generations)
}

func TestGenerate_SerializationFailureIsRetryable(t *testing.T) {
	store := newMemStore(t)
	store.failInsert = &pgconn.PgError{Code: "40001"}
	g := newTestGenerator(store)

	_, err := g.Generate(context.Background(), mondayRequest(10, 101))

	var ie *scheduling.InfrastructureError
	require.ErrorAs(t, err, &ie)
	assert.True(t, ie.Retryable)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *scheduling.Request)
		field  string
	}{
		{"empty patterns", func(r *scheduling.Request) { r.Patterns = nil }, "patterns"},
		{"unknown semester", func(r *scheduling.Request) { r.SemesterID = 99 }, "semesterId"},
		{"unknown class", func(r *scheduling.Request) { r.ClassID = 99 }, "classId"},
		{"class from another semester", func(r *scheduling.Request) { r.ClassID = 20 }, "classId"},
		{"unknown time slot", func(r *scheduling.Request) { r.Patterns[0].TimeSlotID = 9 }, "patterns[0].timeSlotId"},
		{"unknown room", func(r *scheduling.Request) { r.Patterns[0].RoomID = 999 }, "patterns[0].roomId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(t)
			g := newTestGenerator(store)
			req := mondayRequest(10, 101)
			tt.mutate(&req)

			_, err := g.Generate(context.Background(), req)

			var ve *scheduling.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
			assert.Empty(t, store.state.lessons)
		})
	}
}

func TestGenerate_EmptyPatternsFailBeforeStorage(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)
	req := mondayRequest(10, 101)
	req.Patterns = nil

	_, err := g.Generate(context.Background(), req)

	require.True(t, scheduling.IsValidation(err))
	assert.Zero(t, store.txCount)
}

func TestGenerate_MeetingNumbersContinueChronologically(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)

	first := mondayRequest(10, 101)
	first.Patterns[0].SubRangeEnd = ptrTime(day(t, "2025-01-20"))
	_, err := g.Generate(context.Background(), first)
	require.NoError(t, err)
	require.Len(t, store.state.lessons, 3)

	// Rabu slot 1 (09:00) & Rabu slot 2 (07:00): slot 2 lebih pagi → nomor lebih kecil
	second := scheduling.Request{
		SemesterID: 1, ClassID: 10, LecturerID: 7,
		Patterns: []scheduling.Pattern{
			{DayOfWeek: time.Wednesday, TimeSlotID: 1, RoomID: 101,
				SubRangeStart: ptrTime(day(t, "2025-01-22")), SubRangeEnd: ptrTime(day(t, "2025-01-22"))},
			{DayOfWeek: time.Wednesday, TimeSlotID: 2, RoomID: 102,
				SubRangeStart: ptrTime(day(t, "2025-01-22")), SubRangeEnd: ptrTime(day(t, "2025-01-22"))},
		},
	}
	res, err := g.Generate(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 2, res.LessonsCreated)

	bySlot := map[int64]int{}
	for _, l := range store.state.lessons[3:] {
		bySlot[l.LessonTimeSlotID] = l.LessonMeetingNumber
	}
	assert.Equal(t, 4, bySlot[2])
	assert.Equal(t, 5, bySlot[1])
}

func TestGenerate_CanceledLessonsFreeTheSlot(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)
	_, err := g.Generate(context.Background(), mondayRequest(10, 101))
	require.NoError(t, err)
	for i := range store.state.lessons {
		store.state.lessons[i].LessonStatus = model.LessonStatusCanceled
	}

	res, err := g.Generate(context.Background(), mondayRequest(11, 101))

	require.NoError(t, err)
	assert.Equal(t, 16, res.LessonsCreated)
}

func TestGenerate_SubRangeWithoutOccurrences(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)
	req := mondayRequest(10, 101)
	req.Patterns[0].SubRangeStart = ptrTime(day(t, "2025-03-04"))
	req.Patterns[0].SubRangeEnd = ptrTime(day(t, "2025-03-04"))

	res, err := g.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Zero(t, res.LessonsCreated)
	assert.Empty(t, store.state.lessons)
}

func TestPreview_DoesNotWrite(t *testing.T) {
	store := newMemStore(t)
	g := newTestGenerator(store)
	_, err := g.Generate(context.Background(), mondayRequest(10, 101))
	require.NoError(t, err)
	before := store.state.clone()

	res, err := g.Preview(context.Background(), mondayRequest(11, 101))

	require.NoError(t, err)
	assert.Len(t, res.Candidates, 16)
	assert.Len(t, res.Skipped, 1)
	assert.Len(t, res.Conflicts, 16*2) // room + lecturer
	assert.Equal(t, before, store.state)

	// tanpa lock: hanya dari Generate sebelumnya
	assert.Equal(t, []int64{10}, store.lockedClasses)
	assert.Len(t, store.lockedKeys, 1)
}

func ptrTime(t time.Time) *time.Time { return &t }
