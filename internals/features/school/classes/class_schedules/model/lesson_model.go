// file: internals/features/school/classes/class_schedules/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonStatus string

const (
	LessonStatusScheduled LessonStatus = "scheduled"
	LessonStatusCompleted LessonStatus = "completed"
	LessonStatusCanceled  LessonStatus = "canceled"
)

/* =====================
   MODEL
   ===================== */

type LessonModel struct {
	// PK
	LessonID int64 `gorm:"primaryKey;autoIncrement;column:lesson_id" json:"lesson_id"`

	// Scope
	LessonSemesterID int64 `gorm:"not null;column:lesson_semester_id" json:"lesson_semester_id"`
	LessonClassID    int64 `gorm:"not null;column:lesson_class_id" json:"lesson_class_id"`

	// Slot (tanggal sipil + slot jam)
	LessonDate       time.Time `gorm:"type:date;not null;column:lesson_date" json:"lesson_date"`
	LessonTimeSlotID int64     `gorm:"not null;column:lesson_time_slot_id" json:"lesson_time_slot_id"`

	// Resource
	LessonRoomID     int64 `gorm:"not null;column:lesson_room_id" json:"lesson_room_id"`
	LessonLecturerID int64 `gorm:"not null;column:lesson_lecturer_id" json:"lesson_lecturer_id"`

	LessonStatus        LessonStatus `gorm:"type:varchar(16);not null;default:'scheduled';column:lesson_status" json:"lesson_status"`
	LessonMeetingNumber int          `gorm:"not null;column:lesson_meeting_number" json:"lesson_meeting_number"`
	LessonSlug          string       `gorm:"type:varchar(160);not null;column:lesson_slug" json:"lesson_slug"`

	// Waktu absolut (zona sekolah → UTC)
	LessonStartsAt time.Time `gorm:"type:timestamptz;not null;column:lesson_starts_at" json:"lesson_starts_at"`
	LessonEndsAt   time.Time `gorm:"type:timestamptz;not null;column:lesson_ends_at" json:"lesson_ends_at"`

	// Batch generate
	LessonGenerationID *uuid.UUID `gorm:"type:uuid;column:lesson_generation_id" json:"lesson_generation_id,omitempty"`

	// Audit
	LessonCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:lesson_created_at" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:lesson_updated_at" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"lesson_deleted_at,omitempty"`
}

func (LessonModel) TableName() string { return "lessons" }
