// file: internals/features/school/classes/class_schedules/model/holiday_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

type HolidayModel struct {
	// PK
	HolidayID int64 `gorm:"primaryKey;autoIncrement;column:holiday_id" json:"holiday_id"`

	// NULL = libur global (semua semester)
	HolidaySemesterID *int64 `gorm:"column:holiday_semester_id" json:"holiday_semester_id,omitempty"`

	// Tanggal (satu hari = start=end) atau rentang
	HolidayStartDate time.Time `gorm:"type:date;not null;column:holiday_start_date" json:"holiday_start_date"`
	HolidayEndDate   time.Time `gorm:"type:date;not null;column:holiday_end_date" json:"holiday_end_date"`

	// Informasi
	HolidayTitle  string  `gorm:"type:varchar(200);not null;column:holiday_title" json:"holiday_title"`
	HolidayReason *string `gorm:"type:text;column:holiday_reason" json:"holiday_reason,omitempty"`

	// Flags
	HolidayIsActive          bool `gorm:"not null;default:true;column:holiday_is_active" json:"holiday_is_active"`
	HolidayIsRecurringYearly bool `gorm:"not null;default:false;column:holiday_is_recurring_yearly" json:"holiday_is_recurring_yearly"`

	// Audit
	HolidayCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:holiday_created_at" json:"holiday_created_at"`
	HolidayUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:holiday_updated_at" json:"holiday_updated_at"`
	HolidayDeletedAt gorm.DeletedAt `gorm:"column:holiday_deleted_at;index" json:"holiday_deleted_at,omitempty"`
}

func (HolidayModel) TableName() string { return "holidays" }
