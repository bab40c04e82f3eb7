package models

import "time"

type BookingEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action        string `gorm:"size:50;not null" json:"action"`
	ReservationID *int64 `json:"reservation_id"`
	Detail        string `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `json:"created_at"`
}
