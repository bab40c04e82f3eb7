package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Store é a única fonte de verdade entre requisições: carrega a coleção
// inteira e regrava a coleção inteira. Implementações preservam a ordem
// do slice recebido em SaveAll.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Reservation, error)

	SaveAll(
		ctx context.Context,
		reservations []models.Reservation,
	) error
}
