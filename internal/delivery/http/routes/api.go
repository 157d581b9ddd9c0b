package routes

import (
	"colab/internal/config"
	"colab/internal/database"
	"colab/internal/delivery/http/handler"
	"colab/internal/delivery/http/middleware"
	"colab/internal/pkg/jwt"
	"colab/internal/repository"
	"colab/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// RegisterAPI wires repositories, usecases and handlers onto the /api group.
// Everything past the auth endpoints requires a valid session token.
func RegisterAPI(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.SessionSecret, cfg.JWT.SessionExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresProfileRepository(db)
	connectionRepo := repository.NewPostgresConnectionRepository(db)
	messageRepo := repository.NewPostgresMessageRepository(db)

	authUC := usecase.NewAuthUsecase(profileRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, cache)
	matchingUC := usecase.NewMatchingUsecase(profileRepo, cache)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, connectionRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())
	handler.NewProfileHandler(profileUC).RegisterRoutes(protected.Group("/profile"))
	handler.NewMatchHandler(matchingUC).RegisterRoutes(protected.Group("/matches"))
	handler.NewConnectionHandler(connectionUC).RegisterRoutes(protected.Group("/connections"))
	handler.NewChatHandler(messageUC).RegisterRoutes(protected.Group("/chat"))
}
