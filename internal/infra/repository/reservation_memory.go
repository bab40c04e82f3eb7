package repository

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Store em memória para desenvolvimento e testes. Sem durabilidade.
type ReservationMemoryRepository struct {
	mu   sync.RWMutex
	rows []models.Reservation
}

func NewReservationMemoryRepository() *ReservationMemoryRepository {
	return &ReservationMemoryRepository{
		rows: []models.Reservation{},
	}
}

func (r *ReservationMemoryRepository) LoadAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *ReservationMemoryRepository) SaveAll(
	ctx context.Context,
	reservations []models.Reservation,
) error {

	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]models.Reservation, len(reservations))
	copy(rows, reservations)
	r.rows = rows
	return nil
}

// Compile-time check
var _ domain.Store = (*ReservationMemoryRepository)(nil)
