package reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// Códigos de negócio
// ======================================================

const (
	CodeMissingFields = "missing_fields"
	CodeCashOnly      = "cash_only"
	CodeSlotTaken     = "slot_taken"
	CodeDayTaken      = "day_taken"
	CodeSlotFull      = "slot_full"
)

// ======================================================
// Mensagens ao cliente (texto fixo do produto)
// ======================================================

const (
	MsgMissingFields = "All fields are required."
	MsgCashOnly      = "Only cash payment is accepted."
	MsgSlotTaken     = "You already have a reservation for this time slot."
	MsgDayTaken      = "You already have an active reservation today. Please wait until it resets before booking another."
)

func SlotFullMessage(tableLimit int, slot string) string {
	return fmt.Sprintf("Sorry, all %d tables are booked for the %s slot.", tableLimit, slot)
}

func ConfirmationMessage(slot string) string {
	return fmt.Sprintf("Reservation confirmed for %s. Please arrive on time.", slot)
}

// ======================================================
// INPUT
// ======================================================

type Request struct {
	Name          string
	Contact       string
	Date          string
	Time          string
	Guests        int
	PaymentMethod string
}

// ======================================================
// Identidade para detecção de duplicata
// ======================================================

// contato é chave exata; nome compara sem caixa e sem espaços nas bordas.
// Qualquer um dos dois sozinho já identifica o mesmo cliente.
func sameIdentity(r models.Reservation, contact, name string) bool {
	if r.Contact == contact {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name))
}

// ======================================================
// Avaliação
// ======================================================

// Evaluate aplica os gates em ordem: campos obrigatórios, pagamento em
// dinheiro, duplicata no slot, duplicata no dia, capacidade. O primeiro
// gate que falhar decide a rejeição; sucesso devolve o registro pronto
// para persistir. Não escreve nada.
func Evaluate(
	req Request,
	existing []models.Reservation,
	tableLimit int,
	now time.Time,
) (*models.Reservation, error) {

	if req.Name == "" || req.Contact == "" || req.Date == "" || req.Time == "" || req.Guests <= 0 {
		return nil, httperr.ErrBusinessMsg(CodeMissingFields, MsgMissingFields)
	}

	if req.PaymentMethod != "cash" {
		return nil, httperr.ErrBusinessMsg(CodeCashOnly, MsgCashOnly)
	}

	slot := ComputeSlot(req.Time)

	sameSlotCount := 0
	for _, r := range existing {
		if r.Date != req.Date || r.Slot != slot {
			continue
		}
		if sameIdentity(r, req.Contact, req.Name) {
			return nil, httperr.ErrBusinessMsg(CodeSlotTaken, MsgSlotTaken)
		}
		sameSlotCount++
	}

	for _, r := range existing {
		if r.Date == req.Date && sameIdentity(r, req.Contact, req.Name) {
			return nil, httperr.ErrBusinessMsg(CodeDayTaken, MsgDayTaken)
		}
	}

	if sameSlotCount >= tableLimit {
		return nil, httperr.ErrBusinessMsg(CodeSlotFull, SlotFullMessage(tableLimit, slot))
	}

	return &models.Reservation{
		ID:            now.UnixMilli(),
		Name:          req.Name,
		Contact:       req.Contact,
		Date:          req.Date,
		Time:          req.Time,
		Slot:          slot,
		Guests:        req.Guests,
		PaymentMethod: req.PaymentMethod,
	}, nil
}
