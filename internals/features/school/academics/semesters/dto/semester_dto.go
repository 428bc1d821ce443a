package dto

import (
	"errors"
	"strings"
	"time"

	"schoolku_backend/internals/features/school/academics/semesters/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

var ErrSemesterRange = errors.New("semester_start_date harus sebelum semester_end_date")

type SemesterCreateRequest struct {
	SemesterAcademicYear string `json:"semester_academic_year" validate:"required,max=20"`
	SemesterName         string `json:"semester_name"          validate:"required,max=60"`
	SemesterStartDate    string `json:"semester_start_date"    validate:"required,datetime=2006-01-02"`
	SemesterEndDate      string `json:"semester_end_date"      validate:"required,datetime=2006-01-02"`
	SemesterIsActive     *bool  `json:"semester_is_active"`
}

func (r SemesterCreateRequest) ToModel() (model.SemesterModel, error) {
	start, err := scheduling.ParseDate(strings.TrimSpace(r.SemesterStartDate))
	if err != nil {
		return model.SemesterModel{}, err
	}
	end, err := scheduling.ParseDate(strings.TrimSpace(r.SemesterEndDate))
	if err != nil {
		return model.SemesterModel{}, err
	}
	if !start.Before(end) {
		return model.SemesterModel{}, ErrSemesterRange
	}
	m := model.SemesterModel{
		SemesterAcademicYear: strings.TrimSpace(r.SemesterAcademicYear),
		SemesterName:         strings.TrimSpace(r.SemesterName),
		SemesterStartDate:    start,
		SemesterEndDate:      end,
		SemesterIsActive:     true,
	}
	if r.SemesterIsActive != nil {
		m.SemesterIsActive = *r.SemesterIsActive
	}
	return m, nil
}

type SemesterResponse struct {
	SemesterID           int64     `json:"semester_id"`
	SemesterAcademicYear string    `json:"semester_academic_year"`
	SemesterName         string    `json:"semester_name"`
	SemesterStartDate    string    `json:"semester_start_date"`
	SemesterEndDate      string    `json:"semester_end_date"`
	SemesterIsActive     bool      `json:"semester_is_active"`
	SemesterCreatedAt    time.Time `json:"semester_created_at"`
}

func FromModel(m model.SemesterModel) SemesterResponse {
	return SemesterResponse{
		SemesterID:           m.SemesterID,
		SemesterAcademicYear: m.SemesterAcademicYear,
		SemesterName:         m.SemesterName,
		SemesterStartDate:    m.SemesterStartDate.Format(scheduling.DateLayout),
		SemesterEndDate:      m.SemesterEndDate.Format(scheduling.DateLayout),
		SemesterIsActive:     m.SemesterIsActive,
		SemesterCreatedAt:    m.SemesterCreatedAt,
	}
}

func FromModels(rows []model.SemesterModel) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
