// file: internals/features/school/classes/class_schedules/model/schedule_generation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleGenerationModel: satu baris per request generate yang berhasil commit.
type ScheduleGenerationModel struct {
	ScheduleGenerationID         uuid.UUID `gorm:"type:uuid;primaryKey;column:schedule_generation_id" json:"schedule_generation_id"`
	ScheduleGenerationSemesterID int64     `gorm:"not null;column:schedule_generation_semester_id" json:"schedule_generation_semester_id"`
	ScheduleGenerationClassID    int64     `gorm:"not null;column:schedule_generation_class_id" json:"schedule_generation_class_id"`
	ScheduleGenerationLecturerID int64     `gorm:"not null;column:schedule_generation_lecturer_id" json:"schedule_generation_lecturer_id"`

	// pattern request apa adanya & tanggal yang di-skip karena libur
	ScheduleGenerationPatterns     datatypes.JSON `gorm:"type:jsonb;not null;column:schedule_generation_patterns" json:"schedule_generation_patterns"`
	ScheduleGenerationSkippedDates datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:schedule_generation_skipped_dates" json:"schedule_generation_skipped_dates"`

	ScheduleGenerationLessonsCreated int     `gorm:"not null;column:schedule_generation_lessons_created" json:"schedule_generation_lessons_created"`
	ScheduleGenerationRequestedBy    *string `gorm:"type:varchar(64);column:schedule_generation_requested_by" json:"schedule_generation_requested_by,omitempty"`

	ScheduleGenerationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:schedule_generation_created_at" json:"schedule_generation_created_at"`
}

func (ScheduleGenerationModel) TableName() string { return "schedule_generations" }
