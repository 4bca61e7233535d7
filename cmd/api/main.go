package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/trimshop/booking-api/internal/config"
	"github.com/trimshop/booking-api/internal/handler"
	barberHandler "github.com/trimshop/booking-api/internal/handler/barber"
	bookingHandler "github.com/trimshop/booking-api/internal/handler/booking"
	catalogHandler "github.com/trimshop/booking-api/internal/handler/catalog"
	customerHandler "github.com/trimshop/booking-api/internal/handler/customer"
	"github.com/trimshop/booking-api/internal/middleware"
	redisclient "github.com/trimshop/booking-api/internal/redis"
	"github.com/trimshop/booking-api/internal/repository/postgres"
	"github.com/trimshop/booking-api/internal/router"
	"github.com/trimshop/booking-api/internal/schedule"
	barberService "github.com/trimshop/booking-api/internal/service/barber"
	bookingService "github.com/trimshop/booking-api/internal/service/booking"
	catalogService "github.com/trimshop/booking-api/internal/service/catalog"
	conversationService "github.com/trimshop/booking-api/internal/service/conversation"
	customerService "github.com/trimshop/booking-api/internal/service/customer"
	applogger "github.com/trimshop/booking-api/pkg/logger"
	"github.com/trimshop/booking-api/pkg/validator"
)

func main() {
	log.Logger = applogger.NewLogger(nil).ZL

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load timezone")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize Redis and the per-barber booking lock
	rdb, err := redisclient.NewClient(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	locker := redisclient.NewBarberLocker(rdb, time.Duration(cfg.Redis.LockTTLSeconds)*time.Second)

	// Initialize repositories
	barberRepo := postgres.NewBarberRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)

	// Initialize services
	grid := schedule.NewGrid(cfg.Scheduling.SlotInterval())
	barberSvc := barberService.NewService(barberRepo)
	catalogSvc := catalogService.NewService(serviceRepo, cfg.Scheduling.DefaultDurationMinutes)
	customerSvc := customerService.NewService(customerRepo)
	conversationSvc := conversationService.NewService(conversationRepo)
	bookingSvc := bookingService.NewService(bookingRepo, barberRepo, serviceRepo, customerSvc, locker, grid, loc)

	// Initialize validation
	validate, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize validator")
	}

	// Initialize handlers
	h := handler.NewHandler()
	barberH := barberHandler.NewHandler(barberSvc, bookingSvc, validate, loc)
	catalogH := catalogHandler.NewHandler(catalogSvc, validate)
	customerH := customerHandler.NewHandler(customerSvc, bookingSvc, conversationSvc, validate)
	bookingH := bookingHandler.NewHandler(bookingSvc, validate, loc)

	// Setup router
	r := router.NewRouter(barberH, catalogH, customerH, bookingH, h, router.Config{
		RateLimit:  rate.Limit(100),
		RateBurst:  200,
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
