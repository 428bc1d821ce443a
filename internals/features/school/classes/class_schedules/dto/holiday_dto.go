// file: internals/features/school/classes/class_schedules/dto/holiday_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	model "schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

var (
	ErrInvalidStartDate = errors.New("holiday_start_date harus YYYY-MM-DD")
	ErrInvalidEndDate   = errors.New("holiday_end_date harus YYYY-MM-DD")
	ErrEndBeforeStart   = errors.New("holiday_end_date tidak boleh sebelum holiday_start_date")
)

/* =========================================================
   REQUESTS
   ========================================================= */

type HolidayCreateRequest struct {
	HolidaySemesterID        *int64  `json:"holiday_semester_id"         validate:"omitempty,min=1"`
	HolidayStartDate         string  `json:"holiday_start_date"          validate:"required,datetime=2006-01-02"`
	HolidayEndDate           *string `json:"holiday_end_date"            validate:"omitempty,datetime=2006-01-02"`
	HolidayTitle             string  `json:"holiday_title"               validate:"required,min=2,max=200"`
	HolidayReason            *string `json:"holiday_reason"              validate:"omitempty,max=2000"`
	HolidayIsActive          *bool   `json:"holiday_is_active"`
	HolidayIsRecurringYearly *bool   `json:"holiday_is_recurring_yearly"`
}

// ToModel: end kosong → satu hari (end = start)
func (r HolidayCreateRequest) ToModel() (model.HolidayModel, error) {
	start, err := scheduling.ParseDate(strings.TrimSpace(r.HolidayStartDate))
	if err != nil {
		return model.HolidayModel{}, ErrInvalidStartDate
	}
	end := start
	if r.HolidayEndDate != nil && strings.TrimSpace(*r.HolidayEndDate) != "" {
		if end, err = scheduling.ParseDate(strings.TrimSpace(*r.HolidayEndDate)); err != nil {
			return model.HolidayModel{}, ErrInvalidEndDate
		}
	}
	if end.Before(start) {
		return model.HolidayModel{}, ErrEndBeforeStart
	}

	m := model.HolidayModel{
		HolidaySemesterID: r.HolidaySemesterID,
		HolidayStartDate:  start,
		HolidayEndDate:    end,
		HolidayTitle:      strings.TrimSpace(r.HolidayTitle),
		HolidayReason:     r.HolidayReason,
		HolidayIsActive:   true,
	}
	if r.HolidayIsActive != nil {
		m.HolidayIsActive = *r.HolidayIsActive
	}
	if r.HolidayIsRecurringYearly != nil {
		m.HolidayIsRecurringYearly = *r.HolidayIsRecurringYearly
	}
	return m, nil
}

type HolidayListQuery struct {
	SemesterID  *int64  `query:"semester_id"  validate:"omitempty,min=1"`
	IsActive    *bool   `query:"is_active"`
	IsRecurring *bool   `query:"is_recurring"`
	DateFrom    *string `query:"date_from"    validate:"omitempty,datetime=2006-01-02"`
	DateTo      *string `query:"date_to"      validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type HolidayResponse struct {
	HolidayID                int64     `json:"holiday_id"`
	HolidaySemesterID        *int64    `json:"holiday_semester_id,omitempty"`
	HolidayStartDate         string    `json:"holiday_start_date"`
	HolidayEndDate           string    `json:"holiday_end_date"`
	HolidayTitle             string    `json:"holiday_title"`
	HolidayReason            *string   `json:"holiday_reason,omitempty"`
	HolidayIsActive          bool      `json:"holiday_is_active"`
	HolidayIsRecurringYearly bool      `json:"holiday_is_recurring_yearly"`
	HolidayCreatedAt         time.Time `json:"holiday_created_at"`
	HolidayUpdatedAt         time.Time `json:"holiday_updated_at"`
}

func FromHolidayModel(m model.HolidayModel) HolidayResponse {
	return HolidayResponse{
		HolidayID:                m.HolidayID,
		HolidaySemesterID:        m.HolidaySemesterID,
		HolidayStartDate:         m.HolidayStartDate.Format(scheduling.DateLayout),
		HolidayEndDate:           m.HolidayEndDate.Format(scheduling.DateLayout),
		HolidayTitle:             m.HolidayTitle,
		HolidayReason:            m.HolidayReason,
		HolidayIsActive:          m.HolidayIsActive,
		HolidayIsRecurringYearly: m.HolidayIsRecurringYearly,
		HolidayCreatedAt:         m.HolidayCreatedAt,
		HolidayUpdatedAt:         m.HolidayUpdatedAt,
	}
}

func FromHolidayModels(rows []model.HolidayModel) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromHolidayModel(r))
	}
	return out
}
