package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) LoadAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}

// SaveAll regrava a coleção inteira numa transação: apaga tudo e reinsere
// na ordem do slice. O seq auto-incrementado preserva a ordem de aceitação
// entre regravações.
func (r *ReservationGormRepository) SaveAll(
	ctx context.Context,
	reservations []models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(`DELETE FROM reservations`).Error; err != nil {
			return err
		}

		if len(reservations) == 0 {
			return nil
		}

		rows := make([]models.Reservation, len(reservations))
		copy(rows, reservations)
		for i := range rows {
			rows[i].Seq = 0
		}

		return tx.Create(&rows).Error
	})
}

// Compile-time check
var _ domain.Store = (*ReservationGormRepository)(nil)
