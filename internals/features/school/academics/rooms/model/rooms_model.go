// file: internals/features/school/academics/rooms/model/rooms_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// RoomModel merepresentasikan tabel rooms
type RoomModel struct {
	RoomID int64 `json:"room_id" gorm:"primaryKey;autoIncrement;column:room_id"`

	RoomName     string  `json:"room_name" gorm:"type:varchar(120);not null;column:room_name"`
	RoomCode     *string `json:"room_code,omitempty" gorm:"type:varchar(40);column:room_code"`
	RoomLocation *string `json:"room_location,omitempty" gorm:"type:text;column:room_location"`
	RoomCapacity *int    `json:"room_capacity,omitempty" gorm:"column:room_capacity"`
	RoomIsActive bool    `json:"room_is_active" gorm:"not null;default:true;column:room_is_active"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at,omitempty" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string { return "rooms" }
