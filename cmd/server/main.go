package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/robfig/cron/v3"

	"tharagrowth-api/internal/advisor"
	"tharagrowth-api/internal/catalog"
	"tharagrowth-api/internal/config"
	"tharagrowth-api/internal/handlers"
	"tharagrowth-api/internal/models"
	"tharagrowth-api/internal/services"
	"tharagrowth-api/pkg/exchangerate"
	"tharagrowth-api/pkg/goldprice"
	"tharagrowth-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Environment != "production",
	})

	// Static catalog, loaded once and read-only afterwards
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load investment catalog")
	}

	// Initialize services
	exchangeService := services.NewExchangeService(
		exchangerate.NewClient(cfg.ExchangeAPIBaseURL, cfg.HTTPTimeout),
		cfg.RatesCacheTTL,
		log,
	)
	marketService := services.NewMarketService(
		goldprice.NewClient(cfg.GoldAPIURLs, cfg.HTTPTimeout),
		cfg.MarketCacheTTL,
		log,
	)
	newsService := services.NewNewsService(cfg.NewsCacheTTL, log)

	// Session store: in-memory, the stored analysis is transient and
	// may be lost on restart.
	store := session.New(session.Config{
		Expiration:     cfg.SessionExpiration,
		CookieHTTPOnly: true,
	})
	store.RegisterType(models.AnalysisResult{})

	// Initialize handlers
	advisorHandler := handlers.NewAdvisorHandler(
		advisor.NewProfiler(),
		advisor.NewEngine(),
		cat,
		exchangeService,
		store,
		log,
	)
	marketHandler := handlers.NewMarketHandler(marketService, exchangeService, newsService, cat, store)
	healthHandler := handlers.NewHealthHandler()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
		ServerHeader:  "TharaGrowth-API",
		AppName:       "TharaGrowth v1.0",
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 10,
		BodyLimit:     1 * 1024 * 1024, // 1MB
		ErrorHandler:  handlers.CustomErrorHandler,
	})

	// Middleware stack
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	// Routes
	app.Get("/", marketHandler.Home)
	app.Post("/analyze", advisorHandler.Analyze)
	app.Get("/results", advisorHandler.Results)
	app.Get("/education", marketHandler.Education)
	app.Get("/set-language/:lang", marketHandler.SetLanguage)

	app.Get("/api/market-data", marketHandler.MarketData)
	app.Get("/api/currency-convert", marketHandler.CurrencyConvert)
	app.Get("/api/status", marketHandler.Status)

	app.Get("/health", healthHandler.Health)
	app.Get("/health/ready", healthHandler.Ready)

	// Background warmer keeps the market snapshot and major rates fresh
	// so TTL expiry rarely lands on the request path.
	var warmer *cron.Cron
	if cfg.WarmInterval > 0 {
		warmer = cron.New()
		_, err := warmer.AddFunc("@every "+cfg.WarmInterval.String(), func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout*3)
			defer cancel()
			marketService.Refresh(ctx)
			exchangeService.RefreshMajorRates(ctx)
			log.Debug().Msg("market data caches refreshed")
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to register cache warmer")
		}
		warmer.Start()
	}

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("TharaGrowth API started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if warmer != nil {
		warmer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server shutdown complete")
}
