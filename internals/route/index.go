// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/classes/class_schedules/repository"
	scheduleRoutes "schoolku_backend/internals/features/school/classes/class_schedules/route"
	"schoolku_backend/internals/features/school/classes/class_schedules/services"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
	middlewares "schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb redis.UniversalClient, cfg *configs.AppConfig) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== DEPENDENCIES =====================
	cache := repository.NewHolidayCache(rdb, cfg.HolidayCacheTTL)
	gen := services.NewGenerator(repository.NewGormTxManager(db, cache), services.GenerateOptions{
		TZName:        cfg.SchoolTimezone,
		BatchSize:     cfg.LessonBatchSize,
		MaxCandidates: cfg.MaxCandidates,
	})
	deps := scheduleRoutes.Deps{
		DB:        db,
		Validate:  helper.NewValidator(),
		Generator: gen,
		Cache:     cache,
	}

	schoolLoc := dbtime.LoadSchoolLocation(cfg.SchoolTimezone)
	withSchoolLoc := func(c *fiber.Ctx) error {
		c.Locals(dbtime.LocSchoolLoc, schoolLoc)
		return c.Next()
	}

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              cfg.JWTSecret,
		AllowCookieFallback: true,
	}

	// ===================== PRIVATE (USER) =====================
	log.Info("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthJWT(jwtOpts), withSchoolLoc)

	// ===================== ADMIN =====================
	log.Info("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("admin"), constants.TeacherAndAbove),
		withSchoolLoc,
	)
	admin.Use("/lesson-schedules/generate", middlewares.GenerateRateLimiter())

	// ===================== MOUNT ROUTES =====================
	log.Info("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(user, deps)
	routeDetails.SchoolAdminRoutes(admin, deps)
}
