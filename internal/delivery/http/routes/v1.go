package routes

import (
	"log"

	"tunitech/internal/config"
	"tunitech/internal/database"
	v1 "tunitech/internal/delivery/http/routes/v1"
	"tunitech/internal/usecase"
	"tunitech/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.CatalogCache, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, hub, logger)
}
