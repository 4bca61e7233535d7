package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trimshop/booking-api/internal/email"
	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
	"github.com/trimshop/booking-api/internal/repository/postgres"
)

var (
	digestsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminder_digests_sent_total",
		Help: "The total number of schedule digests sent",
	})
	digestsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminder_digests_failed_total",
		Help: "The total number of schedule digests that failed to send",
	})
	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reminder_run_duration_seconds",
		Help:    "Time spent building and sending digests",
		Buckets: prometheus.DefBuckets,
	})
)

// Config is read from the environment; the reminder worker runs detached
// from the API server and carries its own minimal settings.
type Config struct {
	DatabaseURL  string        `envconfig:"DATABASE_URL" required:"true"`
	SMTPHost     string        `envconfig:"SMTP_HOST" required:"true"`
	SMTPPort     int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string        `envconfig:"SMTP_FROM" required:"true"`
	Timezone     string        `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"1h"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR" default:":8081"`
}

// ReminderWorker emails each active barber their schedule for the next day.
type ReminderWorker struct {
	barbers  repository.BarberRepository
	bookings repository.BookingRepository
	mailer   email.Service
	loc      *time.Location
	interval time.Duration
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", w.interval).Msg("reminder worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder worker shutting down")
			return
		case <-ticker.C:
			if err := w.run(ctx); err != nil {
				log.Error().Err(err).Msg("reminder run failed")
			}
		}
	}
}

func (w *ReminderWorker) run(ctx context.Context) error {
	timer := prometheus.NewTimer(runDuration)
	defer timer.ObserveDuration()

	barbers, err := w.barbers.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list barbers: %w", err)
	}

	now := time.Now().In(w.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, w.loc).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	for _, b := range barbers {
		if b.Email == "" {
			continue
		}

		bookings, err := w.bookings.ListActiveForBarber(ctx, b.ID, dayStart, dayEnd)
		if err != nil {
			log.Error().Err(err).Str("barber", b.Name).Msg("failed to load bookings")
			continue
		}
		if len(bookings) == 0 {
			continue
		}

		subject := fmt.Sprintf("Schedule for %s", dayStart.Format("Mon, 02 Jan"))
		if err := w.mailer.Send(b.Email, subject, buildDigest(b, bookings)); err != nil {
			digestsFailed.Inc()
			log.Error().Err(err).Str("barber", b.Name).Msg("failed to send digest")
			continue
		}

		digestsSent.Inc()
		log.Info().Str("barber", b.Name).Int("bookings", len(bookings)).Msg("digest sent")
	}

	return nil
}

func buildDigest(b *model.Barber, bookings []*model.Booking) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>Hi %s, here is your schedule:</p><ul>", b.Name))
	for _, booking := range bookings {
		sb.WriteString(fmt.Sprintf("<li>%s (booking %s)</li>",
			booking.ScheduledAt.Format("15:04"), booking.ID))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func setupMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("metrics server failed")
			os.Exit(1)
		}
	}()
}

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	var cfg Config
	if err := envconfig.Process("reminder", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load timezone")
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	worker := &ReminderWorker{
		barbers:  postgres.NewBarberRepository(db),
		bookings: postgres.NewBookingRepository(db),
		mailer: email.NewService(email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		loc:      loc,
		interval: cfg.PollInterval,
	}

	setupMetrics(cfg.MetricsAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("shutting down...")
		cancel()
	}()

	worker.Start(ctx)
}
