package scheduler

import (
	"context"
	"log"
	"time"
)

// Resetter é implementado pelo use case de reset.
type Resetter interface {
	Execute(ctx context.Context) error
}

// ResetScheduler dispara o reset integral da coleção num período fixo,
// pela vida inteira do processo. Não há parada nem cancelamento: o ciclo
// de reservas recomeça a cada disparo.
type ResetScheduler struct {
	interval time.Duration
	reset    Resetter
}

func NewResetScheduler(interval time.Duration, reset Resetter) *ResetScheduler {
	return &ResetScheduler{
		interval: interval,
		reset:    reset,
	}
}

func (s *ResetScheduler) Start() {
	go s.loop()
}

func (s *ResetScheduler) loop() {
	ticker := time.NewTicker(s.interval)

	for range ticker.C {
		log.Println("Resetting reservations...")
		if err := s.reset.Execute(context.Background()); err != nil {
			log.Println("reset error:", err)
		}
	}
}
