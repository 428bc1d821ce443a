package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"schoolku_backend/internals/configs"
	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduler"
	middlewares "schoolku_backend/internals/middlewares"
	routes "schoolku_backend/internals/route"
)

const downFlagName = "down"

func main() {
	app := &cli.App{
		Name:   "schoolku",
		Usage:  "school schedule service (lesson generation + conflict check)",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply (or roll back) database migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  downFlagName,
						Usage: "roll back every migration",
					},
				},
				Action: migrateDB,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

/* ===================== migrate ===================== */

func migrateDB(c *cli.Context) error {
	cfg := configs.LoadEnv()
	configs.InitLogger(cfg.LogLevel)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer database.Close(db)

	if c.Bool(downFlagName) {
		log.Warn("[MIGRATE] rolling back all migrations")
		return database.MigrateDown(db)
	}
	log.Info("[MIGRATE] applying migrations")
	return database.MigrateUp(db)
}

/* ===================== serve ===================== */

func serve(_ *cli.Context) error {
	cfg := configs.LoadEnv()
	configs.InitLogger(cfg.LogLevel)

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	database.TunePool(db)

	rdb := configs.ConnectRedis(cfg)

	// ⏱ scheduler setelah DB siap
	sweep, err := scheduler.StartLessonSweepCron(db, cfg.LessonSweepCron)
	if err != nil {
		log.WithError(err).Warn("[LESSON-SWEEP] cron not started")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	timeout := cfg.RequestTimeout
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.WithFields(log.Fields{
			"id":     id,
			"method": c.Method(),
			"url":    c.OriginalURL(),
			"status": c.Response().StatusCode(),
			"dur":    time.Since(start).String(),
		}).Debug("[REQ]")
		return err
	})

	middlewares.SetupMiddlewares(app)
	routes.SetupRoutes(app, db, rdb, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sweep != nil {
		<-sweep.Stop().Done()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	database.Close(db)
	log.Info("👋 shutdown complete")
	return nil
}
