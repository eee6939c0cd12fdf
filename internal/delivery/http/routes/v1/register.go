package v1

import (
	"log"

	"tunitech/internal/config"
	"tunitech/internal/database"
	"tunitech/internal/delivery/http/handler"
	"tunitech/internal/delivery/http/middleware"
	"tunitech/internal/domain/user"
	"tunitech/internal/notification"
	"tunitech/internal/pkg/jwt"
	"tunitech/internal/repository"
	"tunitech/internal/usecase"
	"tunitech/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.CatalogCache, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	industryRepo := repository.NewPostgresIndustryRepository(db)
	devRepo := repository.NewPostgresDeveloperRepository(db)
	devSkillRepo := repository.NewPostgresDeveloperSkillRepository(db)
	devIndustryRepo := repository.NewPostgresDeveloperIndustryRepository(db)
	reqRepo := repository.NewPostgresRequirementRepository(db)
	reqSkillRepo := repository.NewPostgresRequirementSkillRepository(db)
	reqIndustryRepo := repository.NewPostgresRequirementIndustryRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	var notifier notification.Notifier = notification.NopNotifier{}
	if hub != nil {
		notifier = ws.NewNotifier(hub, logger)
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	catalogUC := usecase.NewCatalogUsecase(skillRepo, industryRepo, cache)
	devUC := usecase.NewDeveloperUsecase(devRepo, devSkillRepo, devIndustryRepo, skillRepo, industryRepo)
	reqUC := usecase.NewRequirementUsecase(reqRepo, reqSkillRepo, reqIndustryRepo, skillRepo, industryRepo)
	lifecycleUC := usecase.NewMatchLifecycleUsecase(matchRepo, reqRepo, devRepo, notifier)
	queryUC := usecase.NewMatchQueryUsecase(matchRepo, reqRepo, devRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	catalogHandler := handler.NewCatalogHandler(catalogUC)
	devHandler := handler.NewDeveloperHandler(devUC)
	reqHandler := handler.NewRequirementHandler(reqUC)
	matchHandler := handler.NewMatchHandler(lifecycleUC, queryUC)

	if hub != nil {
		wsHandler := ws.NewHandler(hub, jwtSvc, logger)
		r.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
	}

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/users"))
	catalogHandler.RegisterRoutes(protected.Group("/catalog"))

	developers := protected.Group("/developers")
	devHandler.RegisterRoutes(developers)
	developers.Get("/:id/matches", matchHandler.ListForDeveloper)

	requirements := protected.Group("/requirements")
	reqHandler.RegisterRoutes(requirements)
	requirements.Get("/:id/matches", matchHandler.ListForRequirement)
	requirements.Get("/:id/matches/:developerId", matchHandler.GetForPair)
	requirements.Get("/:id/browse", matchHandler.BrowseDevelopers)

	asCustomer := authMw.RequireRole(string(user.RoleCustomer))
	asDeveloper := authMw.RequireRole(string(user.RoleDeveloper))

	matches := protected.Group("/matches")
	matches.Post("", matchHandler.Create, asCustomer)
	matches.Post("/apply", matchHandler.Apply, asDeveloper)
	matches.Post("/:id/interest", matchHandler.ExpressInterest, asCustomer)
	matches.Post("/:id/approve", matchHandler.Approve, asDeveloper)
	matches.Post("/:id/reject", matchHandler.Reject, asDeveloper)
	matches.Post("/:id/hire", matchHandler.Hire, asCustomer)
}
