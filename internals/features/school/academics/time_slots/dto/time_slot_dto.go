package dto

import (
	"errors"
	"strings"

	"schoolku_backend/internals/features/school/academics/time_slots/model"
	"schoolku_backend/internals/helpers/dbtime"
)

var (
	ErrInvalidStartTime = errors.New("time_slot_start_time harus HH:MM atau HH:MM:SS")
	ErrInvalidEndTime   = errors.New("time_slot_end_time harus HH:MM atau HH:MM:SS")
	ErrEndBeforeStart   = errors.New("time_slot_end_time harus setelah time_slot_start_time")
)

type TimeSlotCreateRequest struct {
	TimeSlotName      string `json:"time_slot_name"       validate:"required,max=60"`
	TimeSlotStartTime string `json:"time_slot_start_time" validate:"required"`
	TimeSlotEndTime   string `json:"time_slot_end_time"   validate:"required"`
	TimeSlotSortOrder *int   `json:"time_slot_sort_order" validate:"omitempty,min=0"`
}

func (r TimeSlotCreateRequest) ToModel() (model.TimeSlotModel, error) {
	start, err := dbtime.Parse(strings.TrimSpace(r.TimeSlotStartTime))
	if err != nil {
		return model.TimeSlotModel{}, ErrInvalidStartTime
	}
	end, err := dbtime.Parse(strings.TrimSpace(r.TimeSlotEndTime))
	if err != nil {
		return model.TimeSlotModel{}, ErrInvalidEndTime
	}
	if !end.After(start.Time) {
		return model.TimeSlotModel{}, ErrEndBeforeStart
	}
	m := model.TimeSlotModel{
		TimeSlotName:      strings.TrimSpace(r.TimeSlotName),
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
	}
	if r.TimeSlotSortOrder != nil {
		m.TimeSlotSortOrder = *r.TimeSlotSortOrder
	}
	return m, nil
}
