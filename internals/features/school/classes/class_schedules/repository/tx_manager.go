package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
	"schoolku_backend/internals/helpers/dbtime"
)

var ErrNotFound = errors.New("record not found")

/* =========================
   Read models
========================= */

type SemesterRange struct {
	ID    int64
	Start time.Time
	End   time.Time
}

type ClassRef struct {
	ID         int64
	SemesterID int64
	Slug       string
}

type TimeSlotRef struct {
	ID    int64
	Start dbtime.Tod
	End   dbtime.Tod
}

/* =========================
   Repositories (scoped ke satu tx)
========================= */

type SemesterRepository interface {
	GetSemesterRange(ctx context.Context, semesterID int64) (SemesterRange, error)
}

type ClassRepository interface {
	GetClass(ctx context.Context, classID int64) (ClassRef, error)
	// LockClass: row lock sampai tx selesai (hanya jalur generate).
	LockClass(ctx context.Context, classID int64) error
}

type ReferenceRepository interface {
	GetTimeSlots(ctx context.Context, ids []int64) (map[int64]TimeSlotRef, error)
	ExistingRoomIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

type HolidayRepository interface {
	GetHolidays(ctx context.Context, semesterID int64, window scheduling.Window) (scheduling.HolidaySet, error)
}

type LessonRepository interface {
	LockResourceKeys(ctx context.Context, keys []int64) error
	GetLessonsInRange(ctx context.Context, start, end time.Time) ([]scheduling.ExistingLesson, error)
	MaxMeetingNumber(ctx context.Context, classID int64) (int, error)
	InsertLessons(ctx context.Context, rows []model.LessonModel, batchSize int) (int, error)
	InsertGeneration(ctx context.Context, row *model.ScheduleGenerationModel) error
}

type TxRepositories struct {
	Semesters  SemesterRepository
	Classes    ClassRepository
	References ReferenceRepository
	Holidays   HolidayRepository
	Lessons    LessonRepository
}

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

/* =========================
   GORM implementation
========================= */

type GormTxManager struct {
	db    *gorm.DB
	cache *HolidayCache
}

// NewGormTxManager: cache boleh nil (Redis tidak dikonfigurasi).
func NewGormTxManager(db *gorm.DB, cache *HolidayCache) *GormTxManager {
	return &GormTxManager{db: db, cache: cache}
}

// WithTx menjalankan fn dalam satu transaksi READ COMMITTED.
// fn mengembalikan error → rollback; nil → commit.
func (m *GormTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holidays HolidayRepository = NewGormHolidayRepository(tx)
		if m.cache != nil {
			holidays = m.cache.Wrap(holidays)
		}
		repos := TxRepositories{
			Semesters:  &gormSemesterRepository{db: tx},
			Classes:    &gormClassRepository{db: tx},
			References: &gormReferenceRepository{db: tx},
			Holidays:   holidays,
			Lessons:    &gormLessonRepository{db: tx},
		}
		return fn(ctx, repos)
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}
