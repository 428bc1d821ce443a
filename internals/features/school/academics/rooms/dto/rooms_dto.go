package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/academics/rooms/model"
)

type RoomCreateRequest struct {
	RoomName     string  `json:"room_name"     validate:"required,min=1,max=120"`
	RoomCode     *string `json:"room_code"     validate:"omitempty,max=40"`
	RoomLocation *string `json:"room_location" validate:"omitempty"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,min=0"`
	RoomIsActive *bool   `json:"room_is_active"`
}

func (r RoomCreateRequest) ToModel() model.RoomModel {
	m := model.RoomModel{
		RoomName:     strings.TrimSpace(r.RoomName),
		RoomCode:     trimPtr(r.RoomCode),
		RoomLocation: trimPtr(r.RoomLocation),
		RoomCapacity: r.RoomCapacity,
		RoomIsActive: true,
	}
	if r.RoomIsActive != nil {
		m.RoomIsActive = *r.RoomIsActive
	}
	return m
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
