package reservation

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	// mu serializa carrega-avalia-regrava. Compartilhado com o reset:
	// é o único ponto de sincronização sobre o Store.
	mu     *sync.Mutex
	store  domain.Store
	events *events.Dispatcher

	tableLimit int
	now        func() time.Time
}

func NewCreateReservation(
	mu *sync.Mutex,
	store domain.Store,
	dispatcher *events.Dispatcher,
	tableLimit int,
) *CreateReservation {
	return &CreateReservation{
		mu:         mu,
		store:      store,
		events:     dispatcher,
		tableLimit: tableLimit,
		now:        time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in domain.Request,
) (*models.Reservation, error) {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	res, err := domain.Evaluate(in, existing, uc.tableLimit, uc.now())
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			uc.events.Dispatch(events.Event{
				Action: events.ActionReservationRejected,
				Detail: be.Code,
			})
		}
		return nil, err
	}

	existing = append(existing, *res)
	if err := uc.store.SaveAll(ctx, existing); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:        events.ActionReservationAccepted,
		ReservationID: &res.ID,
		Detail:        res.Slot,
	})

	return res, nil
}
