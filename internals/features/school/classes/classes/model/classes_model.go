// models/class_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel `classes` (satu rombel per semester)
type ClassModel struct {
	ClassID         int64 `json:"class_id" gorm:"column:class_id;primaryKey;autoIncrement"`
	ClassSemesterID int64 `json:"class_semester_id" gorm:"column:class_semester_id;not null"`

	// Identitas
	ClassName string  `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassSlug string  `json:"class_slug" gorm:"column:class_slug;type:varchar(160);not null"`
	ClassCode *string `json:"class_code,omitempty" gorm:"column:class_code;type:varchar(40)"`

	ClassIsActive bool `json:"class_is_active" gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
