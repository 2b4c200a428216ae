package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api_middleware "github.com/wordrush/WordRush/api/middleware"
	v1 "github.com/wordrush/WordRush/api/v1"
	"github.com/wordrush/WordRush/internal/apperrors"
	"github.com/wordrush/WordRush/internal/game"
	"github.com/wordrush/WordRush/internal/stats"
	"github.com/wordrush/WordRush/internal/user"
	"github.com/wordrush/WordRush/internal/word"
	"github.com/wordrush/WordRush/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system values")
	}
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db.Init()
	if err := db.DB.AutoMigrate(&user.User{}, &word.Word{}, &game.Session{}, &game.Guess{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	wordStore := word.NewGormStore()
	if err := word.Seed(wordStore); err != nil {
		log.Fatal().Err(err).Msg("word seeding failed")
	}

	userRepo := user.NewGormUserRepository()
	userService := user.NewUserService(userRepo)
	if err := userService.EnsureAdmin(os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	sessionRepo := game.NewGormSessionRepository()
	guessRepo := game.NewGormGuessRepository()
	limiter := game.NewRedisDailyLimiter()
	gameService := game.NewGameService(sessionRepo, guessRepo, wordStore, limiter)
	statsService := stats.NewService(sessionRepo, guessRepo, userRepo, wordStore)
	wordService := word.NewService(wordStore)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	api := e.Group("/api/v1")
	v1.RegisterAuthRoutes(api.Group("/auth"), userService)

	games := api.Group("/games")
	games.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterGameRoutes(games, gameService)

	players := api.Group("/players/me")
	players.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterPlayerRoutes(players, statsService)

	admin := api.Group("/admin")
	admin.Use(api_middleware.SetupJWTMiddleware())
	admin.Use(api_middleware.AdminOnly)
	v1.RegisterAdminRoutes(admin, wordService)

	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting server")
	if err := e.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// httpErrorHandler maps application errors onto JSON responses. Pool
// exhaustion is an operational failure and logged at error level; routine
// client errors stay at debug.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		message = appErr.Message
		if appErr.Kind == apperrors.ResourceExhausted || appErr.Kind == apperrors.Internal {
			log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("operation failed")
		} else {
			log.Debug().Err(err).Str("uri", c.Request().RequestURI).Msg("request rejected")
		}
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	default:
		log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled error")
	}

	if err := c.JSON(code, echo.Map{"error": message}); err != nil {
		log.Error().Err(err).Msg("error writing error response")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
