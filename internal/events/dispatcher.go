package events

import "log"

// ======================================================
// Eventos do ciclo de vida das reservas
// ======================================================

const (
	ActionReservationAccepted = "reservation_accepted"
	ActionReservationRejected = "reservation_rejected"
	ActionReservationsReset   = "reservations_reset"
)

type Event struct {
	Action        string
	ReservationID *int64
	Detail        string
}

// Sink recebe eventos já fora do caminho da requisição.
type Sink interface {
	Record(ev Event) error
}

// ======================================================
// Dispatcher assíncrono
// ======================================================

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			log.Println("booking event error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos o evento (nunca quebrar a API)
		log.Println("event queue full, dropping event")
	}
}
