package repository

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func TestMemoryRepositoryStartsEmpty(t *testing.T) {
	repo := NewReservationMemoryRepository()

	out, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection, got %d", len(out))
	}
	if out == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

func TestMemoryRepositorySaveLoadPreservesOrder(t *testing.T) {
	repo := NewReservationMemoryRepository()
	ctx := context.Background()

	rows := []models.Reservation{
		{ID: 1, Name: "A", Contact: "a", Date: "2026-09-01", Time: "12:00", Slot: "12:00-13:30"},
		{ID: 2, Name: "B", Contact: "b", Date: "2026-09-01", Time: "12:10", Slot: "12:00-13:30"},
		{ID: 3, Name: "C", Contact: "c", Date: "2026-09-01", Time: "19:00", Slot: "18:00-19:30"},
	}

	if err := repo.SaveAll(ctx, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(out))
	}
	for i := range rows {
		if out[i].ID != rows[i].ID {
			t.Fatalf("order not preserved at %d: got id %d, want %d", i, out[i].ID, rows[i].ID)
		}
	}
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewReservationMemoryRepository()
	ctx := context.Background()

	rows := []models.Reservation{{ID: 1, Name: "A", Contact: "a"}}
	if err := repo.SaveAll(ctx, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutar o slice de entrada ou o de saída não pode vazar para o store
	rows[0].Name = "mutated"

	out, _ := repo.LoadAll(ctx)
	if out[0].Name != "A" {
		t.Fatalf("input mutation leaked into store: %s", out[0].Name)
	}

	out[0].Name = "mutated"
	again, _ := repo.LoadAll(ctx)
	if again[0].Name != "A" {
		t.Fatalf("output mutation leaked into store: %s", again[0].Name)
	}
}

func TestMemoryRepositorySaveAllOverwrites(t *testing.T) {
	repo := NewReservationMemoryRepository()
	ctx := context.Background()

	if err := repo.SaveAll(ctx, []models.Reservation{{ID: 1}, {ID: 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveAll(ctx, []models.Reservation{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, _ := repo.LoadAll(ctx)
	if len(out) != 0 {
		t.Fatalf("expected wiped collection, got %d rows", len(out))
	}
}

func TestMemoryRepositoryHonorsCancelledContext(t *testing.T) {
	repo := NewReservationMemoryRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.LoadAll(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if err := repo.SaveAll(ctx, nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
