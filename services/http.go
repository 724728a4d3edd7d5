package services

import (
	"errors"
	"fmt"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/docs"
	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/services/handlers"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type HttpService struct {
	appContext.DefaultService

	cfg           *config.Config
	authSvc       *AuthService
	userSvc       *UserService
	contentSvc    *ContentService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	app *fiber.App
}

const HTTP_SVC = "http_svc"

func NewHttpService(cfg *config.Config, authSvc *AuthService, userSvc *UserService, contentSvc *ContentService, rateLimitSvc *RateLimitService) *HttpService {
	return &HttpService{
		cfg:          cfg,
		authSvc:      authSvc,
		userSvc:      userSvc,
		contentSvc:   contentSvc,
		rateLimitSvc: rateLimitSvc,
	}
}

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	svc.cfg = ctx.Service(CONFIG_SVC).(*ConfigService).Config()
	svc.authSvc = ctx.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = ctx.Service(USER_SVC).(*UserService)
	svc.contentSvc = ctx.Service(CONTENT_SVC).(*ContentService)
	svc.rateLimitSvc = ctx.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	return svc.DefaultService.Configure(ctx)
}

// Start blocks serving the API; register this service last.
func (svc *HttpService) Start() error {
	svc.app = svc.App()

	log.WithField("port", svc.cfg.HTTPPort).Info("HTTP server listening")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.cfg.HTTPPort))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// App builds the fiber application with every route mounted.
func (svc *HttpService) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               SERVICE_NAME,
		ErrorHandler:          svc.HandleError,
		JSONEncoder:           shared.JSONAPI.Marshal,
		JSONDecoder:           shared.JSONAPI.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(svc.cfg.CORSAllowOrigins, ","),
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	if strings.EqualFold(svc.cfg.LogLevel, "TRACE") {
		app.Use(logger.New())
	}
	if svc.monitoringSvc != nil {
		app.Use(MonitoringMiddleware(svc.monitoringSvc))
	}

	authHandler := handlers.NewAuthHandler(svc.authSvc, svc.userSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.userSvc)

	//Validation endpoints
	app.Get("/ping", svc.ping)
	docs.SwaggerInfo.BasePath = "/"
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth := app.Group("/auth")
	auth.Post("/register", svc.rateLimitSvc.RateLimit(shared.EndpointRegister), authHandler.Register)
	auth.Post("/login", svc.rateLimitSvc.RateLimit(shared.EndpointLogin), authHandler.Login)
	auth.Post("/logout", svc.authSvc.RequiredAuth(), authHandler.Logout)
	auth.Get("/me", svc.authSvc.RequiredAuth(), authHandler.Me)
	auth.Patch("/me", svc.authSvc.RequiredAuth(), authHandler.UpdateStats)

	content := app.Group("/content")
	content.Get("/punches", contentHandler.GetPunches)
	content.Get("/unlocked", svc.authSvc.RequiredAuth(), contentHandler.GetUnlocked)

	training := app.Group("/training")
	training.Get("/moves", contentHandler.GetMoves)
	training.Get("/combo", contentHandler.ParseCombo)

	app.Get("/leaderboard", svc.authSvc.OptionalAuth(), leaderboardHandler.GetLeaderboard)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError("")
	})

	return app
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

// HandleError renders every error as the {code, message, data} envelope.
func (svc *HttpService) HandleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			log.WithError(appErr.Err).WithField("path", c.Path()).Error("Request failed")
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c)
}
