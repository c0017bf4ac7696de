package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"travel-admin/core/config"
	"travel-admin/core/database"
	"travel-admin/core/loader"
	"travel-admin/core/logger"
	"travel-admin/core/middleware/auth"
	"travel-admin/core/middleware/rayid"
	"travel-admin/core/slug"
	"travel-admin/core/storage"
	"travel-admin/feature/catalog"
	"travel-admin/feature/catalog/models"
	"travel-admin/feature/integrity"
	"travel-admin/feature/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "travel-admin/docs/swagger"
)

// @title Travel Admin API
// @version 1.0
// @description Content API for the travel agency site.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the travel admin server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The catalog cannot run without its database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		if cfg.Database.AutoMigrate {
			if err := models.Migrate(db); err != nil {
				logg.Fatal("Schema migration failed", zap.Error(err))
			}
			logg.Info("Schema migrated")
		}

		slugger, err := slug.New(cfg.Slug)
		if err != nil {
			logg.Fatal("Invalid slug configuration", zap.Error(err))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(db, slugger, logg))
		mgr.Register(upload.NewFeature(store, cfg.Storage, logg, cfg.Server.BodyLimit()))
		mgr.Register(integrity.NewFeature(store, cfg.Storage, db, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
