// file: internals/features/school/academics/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/dbtime"
)

// TimeSlotModel: slot jam pelajaran harian (wall clock, tanpa tanggal).
type TimeSlotModel struct {
	TimeSlotID int64 `json:"time_slot_id" gorm:"primaryKey;autoIncrement;column:time_slot_id"`

	TimeSlotName      string     `json:"time_slot_name" gorm:"type:varchar(60);not null;column:time_slot_name"`
	TimeSlotStartTime dbtime.Tod `json:"time_slot_start_time" gorm:"type:time;not null;column:time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod `json:"time_slot_end_time" gorm:"type:time;not null;column:time_slot_end_time"`
	TimeSlotSortOrder int        `json:"time_slot_sort_order" gorm:"not null;default:0;column:time_slot_sort_order"`

	TimeSlotCreatedAt time.Time      `json:"time_slot_created_at" gorm:"column:time_slot_created_at;autoCreateTime"`
	TimeSlotUpdatedAt time.Time      `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;autoUpdateTime"`
	TimeSlotDeletedAt gorm.DeletedAt `json:"time_slot_deleted_at,omitempty" gorm:"column:time_slot_deleted_at;index"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }
