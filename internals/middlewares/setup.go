package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares: recover → cors → limiter → access log
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
