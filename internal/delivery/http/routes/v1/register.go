package v1

import (
	"log"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	skillRepo := repository.NewPostgresUserSkillRepository(deps.DB)
	exchangeRepo := repository.NewPostgresExchangeRepository(deps.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(deps.DB)
	messageRepo := repository.NewPostgresMessageRepository(deps.DB)

	var matchCache usecase.MatchCache
	if deps.Cache != nil {
		matchCache = deps.Cache
	}

	notifier := usecase.NewAsyncNotifier(notificationRepo, deps.Logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, skillRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, matchCache, deps.Logger)
	matchUC := usecase.NewMatchingUsecase(userRepo, skillRepo, matchCache, deps.Config.Match.CacheTTL, deps.Logger)
	exchangeUC := usecase.NewExchangeUsecase(exchangeRepo, userRepo, notifier)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	chatUC := usecase.NewChatUsecase(messageRepo, exchangeRepo, userRepo, notifier)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	skillHandler := handler.NewUserSkillHandler(skillUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	exchangeHandler := handler.NewExchangeHandler(exchangeUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)
	chatHandler := handler.NewChatHandler(chatUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// The websocket upgrade authenticates with a query-param token, so it
	// sits outside the bearer-token group.
	wsHandler := ws.NewHandler(deps.Hub, jwtSvc, deps.Logger)
	r.Get("/ws", wsHandler.Handle)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)

	skillsGroup := protected.Group("/users/me/skills")
	skillHandler.RegisterRoutes(skillsGroup)

	matchesGroup := protected.Group("/matches")
	matchHandler.RegisterRoutes(matchesGroup)

	exchangesGroup := protected.Group("/exchanges")
	exchangeHandler.RegisterRoutes(exchangesGroup)
	chatHandler.RegisterRoutes(exchangesGroup)

	notificationsGroup := protected.Group("/notifications")
	notificationHandler.RegisterRoutes(notificationsGroup)
}
