package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ListReservations struct {
	store domain.Store
}

func NewListReservations(store domain.Store) *ListReservations {
	return &ListReservations{store: store}
}

// Execute devolve a coleção completa, na ordem de aceitação. Leitura pura:
// não passa pelo mutex de escrita, só observa um snapshot já salvo.
func (uc *ListReservations) Execute(
	ctx context.Context,
) ([]models.Reservation, error) {

	out, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}
