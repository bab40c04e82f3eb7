package reservation

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ResetReservations struct {
	mu     *sync.Mutex
	store  domain.Store
	events *events.Dispatcher
}

func NewResetReservations(
	mu *sync.Mutex,
	store domain.Store,
	dispatcher *events.Dispatcher,
) *ResetReservations {
	return &ResetReservations{
		mu:     mu,
		store:  store,
		events: dispatcher,
	}
}

// Execute zera a coleção inteira, incondicionalmente. Passa pelo mesmo
// mutex das criações para nunca apagar uma escrita no meio do caminho.
func (uc *ResetReservations) Execute(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.SaveAll(ctx, []models.Reservation{}); err != nil {
		return err
	}

	uc.events.Dispatch(events.Event{
		Action: events.ActionReservationsReset,
	})
	return nil
}
