package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// A coleção inteira vive como um único documento JSON sob uma chave fixa,
// regravado a cada aceitação e zerado a cada reset.
const reservationsKey = "table-reservations:reservations"

type ReservationRedisRepository struct {
	rdb *redis.Client
}

func NewReservationRedisRepository(rdb *redis.Client) *ReservationRedisRepository {
	return &ReservationRedisRepository{rdb: rdb}
}

func (r *ReservationRedisRepository) LoadAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	raw, err := r.rdb.Get(ctx, reservationsKey).Bytes()
	if err == redis.Nil {
		return []models.Reservation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	var out []models.Reservation
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}

	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}

func (r *ReservationRedisRepository) SaveAll(
	ctx context.Context,
	reservations []models.Reservation,
) error {

	raw, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}

	if err := r.rdb.Set(ctx, reservationsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Store = (*ReservationRedisRepository)(nil)
