package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create *ucReservation.CreateReservation
}

func NewReservationHandler(create *ucReservation.CreateReservation) *ReservationHandler {
	return &ReservationHandler{create: create}
}

// ======================================================
// REQUEST
// ======================================================

type CreateReservationRequest struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:mm
	Guests        int    `json:"guests"`
	PaymentMethod string `json:"paymentMethod"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest

	// Corpo ilegível fica com o struct zerado e cai no gate de campos
	// obrigatórios — mesma resposta que campos ausentes.
	_ = c.ShouldBindJSON(&req)

	res, err := h.create.Execute(
		c.Request.Context(),
		domain.Request{
			Name:          req.Name,
			Contact:       req.Contact,
			Date:          req.Date,
			Time:          req.Time,
			Guests:        req.Guests,
			PaymentMethod: req.PaymentMethod,
		},
	)

	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
			return
		}

		httperr.Internal(c, "Internal server error.")
		return
	}

	httpresp.Message(c, domain.ConfirmationMessage(res.Slot))
}
