package main

import (
	"log"
	"net/http"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	dbpkg "github.com/BruksfildServices01/table-reservations/internal/db"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	infraRepo "github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	var store domain.Store
	var sink events.Sink = events.LogSink{}

	switch cfg.StorageDriver {
	case "redis":
		rdb := dbpkg.NewRedis(cfg)
		store = infraRepo.NewReservationRedisRepository(rdb)

	case "memory":
		store = infraRepo.NewReservationMemoryRepository()

	case "postgres":
		db := dbpkg.NewDB(cfg)
		store = infraRepo.NewReservationGormRepository(db)
		sink = events.NewGormSink(db)

	default:
		log.Fatalf("unknown STORAGE_DRIVER: %q", cfg.StorageDriver)
	}

	dispatcher := events.NewDispatcher(sink)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	resetScheduler := routes.RegisterRoutes(r, store, dispatcher, cfg)
	resetScheduler.Start()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
