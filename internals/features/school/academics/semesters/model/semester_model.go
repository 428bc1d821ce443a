// file: internals/features/school/academics/semesters/model/semester_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type SemesterModel struct {
	// ============ PK ============
	SemesterID int64 `gorm:"primaryKey;autoIncrement;column:semester_id" json:"semester_id"`

	// ============ Identitas ============
	// Example academic_year: "2024/2025"
	SemesterAcademicYear string `gorm:"type:varchar(20);not null;column:semester_academic_year" json:"semester_academic_year"`
	// Example name: "Ganjil" | "Genap"
	SemesterName string `gorm:"type:varchar(60);not null;column:semester_name" json:"semester_name"`

	// Rentang inklusif [start, end]
	SemesterStartDate time.Time `gorm:"type:date;not null;column:semester_start_date" json:"semester_start_date"`
	SemesterEndDate   time.Time `gorm:"type:date;not null;column:semester_end_date" json:"semester_end_date"`
	SemesterIsActive  bool      `gorm:"not null;default:true;column:semester_is_active" json:"semester_is_active"`

	// ============ Audit / Soft delete ============
	SemesterCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"semester_deleted_at,omitempty"`
}

func (SemesterModel) TableName() string { return "semesters" }

// ============ Hooks ============
func (m *SemesterModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: start < end
	if !m.SemesterStartDate.Before(m.SemesterEndDate) {
		return errors.New("semester_start_date must be before semester_end_date")
	}
	m.SemesterAcademicYear = strings.TrimSpace(m.SemesterAcademicYear)
	m.SemesterName = strings.TrimSpace(m.SemesterName)
	return nil
}
