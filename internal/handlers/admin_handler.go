package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type AdminHandler struct {
	list *ucReservation.ListReservations
}

func NewAdminHandler(list *ucReservation.ListReservations) *AdminHandler {
	return &AdminHandler{list: list}
}

// ListReservations devolve o array cru, na ordem de aceitação. Sem filtro,
// sem paginação.
func (h *AdminHandler) ListReservations(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Internal server error.")
		return
	}

	httpresp.OK(c, out)
}
