package routes

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/handlers"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	"github.com/BruksfildServices01/table-reservations/internal/scheduler"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

// RegisterRoutes monta use cases e handlers sobre o Store escolhido e
// devolve o scheduler de reset pronto para Start().
func RegisterRoutes(
	r *gin.Engine,
	store domain.Store,
	dispatcher *events.Dispatcher,
	cfg *config.Config,
) *scheduler.ResetScheduler {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 SERIALIZAÇÃO (SINGLE WRITER)
	// ======================================================
	// Um único mutex cobre criação e reset: todo carrega-avalia-regrava
	// é atômico em relação aos demais.
	storeMu := &sync.Mutex{}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		storeMu,
		store,
		dispatcher,
		cfg.TableLimit,
	)

	listReservationsUC := ucReservation.NewListReservations(store)

	resetReservationsUC := ucReservation.NewResetReservations(
		storeMu,
		store,
		dispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(createReservationUC)
	adminHandler := handlers.NewAdminHandler(listReservationsUC)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================
	r.POST("/reserve", reservationHandler.Create)
	r.GET("/admin/reservations", adminHandler.ListReservations)

	return scheduler.NewResetScheduler(cfg.ResetInterval, resetReservationsUC)
}
