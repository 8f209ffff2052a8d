package cli

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/febra/internal/api"
	"github.com/terraincognita07/febra/internal/db"
	"github.com/terraincognita07/febra/internal/i18n"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diary web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	location := mustLoadLocation(envOr("TZ", "UTC"))
	time.Local = location

	secretKey := envOr("SECRET_KEY", "change_me_in_production")
	dbPath := defaultDBPath()
	port := envOr("PORT", "8080")
	defaultLanguage := envOr("DEFAULT_LANGUAGE", i18n.LangEN)
	cookieSecure := envOr("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer func() {
		if err := db.CloseSQLite(database); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	i18nManager, err := i18n.NewManager(defaultLanguage, defaultLocalesDir())
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, location, i18nManager, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Febra",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Febra listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
	return nil
}
