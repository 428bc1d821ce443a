package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	semesterModel "schoolku_backend/internals/features/school/academics/semesters/model"
	timeSlotModel "schoolku_backend/internals/features/school/academics/time_slots/model"
	classModel "schoolku_backend/internals/features/school/classes/classes/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

/* =========================
   Semester
========================= */

type gormSemesterRepository struct{ db *gorm.DB }

func (r *gormSemesterRepository) GetSemesterRange(ctx context.Context, semesterID int64) (SemesterRange, error) {
	var sem semesterModel.SemesterModel
	err := r.db.WithContext(ctx).
		Select("semester_id", "semester_start_date", "semester_end_date").
		Where("semester_id = ?", semesterID).
		Take(&sem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SemesterRange{}, ErrNotFound
	}
	if err != nil {
		return SemesterRange{}, err
	}
	return SemesterRange{ID: sem.SemesterID, Start: sem.SemesterStartDate, End: sem.SemesterEndDate}, nil
}

/* =========================
   Class
========================= */

type gormClassRepository struct{ db *gorm.DB }

func (r *gormClassRepository) GetClass(ctx context.Context, classID int64) (ClassRef, error) {
	var cls classModel.ClassModel
	err := r.db.WithContext(ctx).
		Select("class_id", "class_semester_id", "class_slug").
		Where("class_id = ?", classID).
		Take(&cls).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClassRef{}, ErrNotFound
	}
	if err != nil {
		return ClassRef{}, err
	}
	return ClassRef{ID: cls.ClassID, SemesterID: cls.ClassSemesterID, Slug: cls.ClassSlug}, nil
}

// LockClass: FOR UPDATE, generate paralel untuk kelas yang sama antre
// (meeting_number tetap berurutan). Preview tidak memanggil ini.
func (r *gormClassRepository) LockClass(ctx context.Context, classID int64) error {
	var id int64
	return r.db.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("class_id").
		Where("class_id = ?", classID).
		Scan(&id).Error
}

/* =========================
   Time slots & rooms
========================= */

type gormReferenceRepository struct{ db *gorm.DB }

func (r *gormReferenceRepository) GetTimeSlots(ctx context.Context, ids []int64) (map[int64]TimeSlotRef, error) {
	out := make(map[int64]TimeSlotRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []timeSlotModel.TimeSlotModel
	if err := r.db.WithContext(ctx).
		Where("time_slot_id = ANY(?)", pq.Array(ids)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.TimeSlotID] = TimeSlotRef{ID: s.TimeSlotID, Start: s.TimeSlotStartTime, End: s.TimeSlotEndTime}
	}
	return out, nil
}

func (r *gormReferenceRepository) ExistingRoomIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var found []int64
	if err := r.db.WithContext(ctx).
		Table("rooms").
		Where("room_id = ANY(?) AND room_is_active AND room_deleted_at IS NULL", pq.Array(ids)).
		Pluck("room_id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

/* =========================
   Holidays
========================= */

type GormHolidayRepository struct{ db *gorm.DB }

func NewGormHolidayRepository(db *gorm.DB) *GormHolidayRepository {
	return &GormHolidayRepository{db: db}
}

// GetHolidays: global ∪ scoped ke semester, hanya yang aktif, diproyeksikan ke window.
func (r *GormHolidayRepository) GetHolidays(ctx context.Context, semesterID int64, window scheduling.Window) (scheduling.HolidaySet, error) {
	var rows []model.HolidayModel
	if err := r.db.WithContext(ctx).
		Where("holiday_is_active").
		Where("holiday_semester_id IS NULL OR holiday_semester_id = ?", semesterID).
		Where("holiday_is_recurring_yearly OR (holiday_start_date <= ? AND holiday_end_date >= ?)", window.End, window.Start).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rules := make([]scheduling.HolidayRule, 0, len(rows))
	for _, h := range rows {
		rules = append(rules, scheduling.HolidayRule{
			Start:           h.HolidayStartDate,
			End:             h.HolidayEndDate,
			RecurringYearly: h.HolidayIsRecurringYearly,
		})
	}
	return scheduling.BuildHolidaySet(window, rules), nil
}

/* =========================
   Lessons
========================= */

type gormLessonRepository struct{ db *gorm.DB }

// LockResourceKeys: advisory lock level transaksi, dilepas otomatis saat commit/rollback.
// keys harus sudah terurut.
func (r *gormLessonRepository) LockResourceKeys(ctx context.Context, keys []int64) error {
	for _, k := range keys {
		if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", k).Error; err != nil {
			return err
		}
	}
	return nil
}

type lessonRow struct {
	ID         int64     `gorm:"column:lesson_id"`
	ClassID    int64     `gorm:"column:lesson_class_id"`
	Date       time.Time `gorm:"column:lesson_date"`
	TimeSlotID int64     `gorm:"column:lesson_time_slot_id"`
	RoomID     int64     `gorm:"column:lesson_room_id"`
	LecturerID int64     `gorm:"column:lesson_lecturer_id"`
}

// GetLessonsInRange: semua lesson aktif (semua kelas) pada [start, end].
func (r *gormLessonRepository) GetLessonsInRange(ctx context.Context, start, end time.Time) ([]scheduling.ExistingLesson, error) {
	var rows []lessonRow
	if err := r.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Select("lesson_id, lesson_class_id, lesson_date, lesson_time_slot_id, lesson_room_id, lesson_lecturer_id").
		Where("lesson_date BETWEEN ? AND ?", start, end).
		Where("lesson_status <> ?", model.LessonStatusCanceled).
		Order("lesson_date, lesson_time_slot_id, lesson_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]scheduling.ExistingLesson, 0, len(rows))
	for _, l := range rows {
		out = append(out, scheduling.ExistingLesson{
			ID:         l.ID,
			ClassID:    l.ClassID,
			Date:       scheduling.DateOnly(l.Date),
			TimeSlotID: l.TimeSlotID,
			RoomID:     l.RoomID,
			LecturerID: l.LecturerID,
		})
	}
	return out, nil
}

func (r *gormLessonRepository) MaxMeetingNumber(ctx context.Context, classID int64) (int, error) {
	var n int
	err := r.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Select("COALESCE(MAX(lesson_meeting_number), 0)").
		Where("lesson_class_id = ?", classID).
		Scan(&n).Error
	return n, err
}

func (r *gormLessonRepository) InsertLessons(ctx context.Context, rows []model.LessonModel, batchSize int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).CreateInBatches(rows, batchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *gormLessonRepository) InsertGeneration(ctx context.Context, row *model.ScheduleGenerationModel) error {
	return r.db.WithContext(ctx).Create(row).Error
}
