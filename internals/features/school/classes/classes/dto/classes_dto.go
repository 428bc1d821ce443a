package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/classes/classes/model"
)

type ClassCreateRequest struct {
	ClassSemesterID int64   `json:"class_semester_id" validate:"required,min=1"`
	ClassName       string  `json:"class_name"        validate:"required,min=1,max=120"`
	ClassSlug       *string `json:"class_slug"        validate:"omitempty,max=160"`
	ClassCode       *string `json:"class_code"        validate:"omitempty,max=40"`
	ClassIsActive   *bool   `json:"class_is_active"`
}

// ToModel: slug final di-set controller (unik per semester)
func (r ClassCreateRequest) ToModel() model.ClassModel {
	m := model.ClassModel{
		ClassSemesterID: r.ClassSemesterID,
		ClassName:       strings.TrimSpace(r.ClassName),
		ClassCode:       r.ClassCode,
		ClassIsActive:   true,
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	return m
}

// BaseSlug: slug eksplisit kalau ada, kalau tidak dari nama.
func (r ClassCreateRequest) BaseSlug() string {
	if r.ClassSlug != nil && strings.TrimSpace(*r.ClassSlug) != "" {
		return *r.ClassSlug
	}
	return r.ClassName
}
