package events

import (
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// Sink gorm (driver postgres)
// ======================================================

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Record(ev Event) error {
	row := models.BookingEvent{
		Action:        ev.Action,
		ReservationID: ev.ReservationID,
		Detail:        ev.Detail,
	}

	return s.db.Create(&row).Error
}

// ======================================================
// Sink de log (drivers sem banco relacional)
// ======================================================

type LogSink struct{}

func (LogSink) Record(ev Event) error {
	if ev.ReservationID != nil {
		log.Printf("booking event: %s reservation=%d %s", ev.Action, *ev.ReservationID, ev.Detail)
		return nil
	}
	log.Printf("booking event: %s %s", ev.Action, ev.Detail)
	return nil
}
