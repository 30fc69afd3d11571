package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rajudas/field-sales-api/internal/config"
	"github.com/rajudas/field-sales-api/internal/infra/database"
	"github.com/rajudas/field-sales-api/internal/infra/http/handlers"
	"github.com/rajudas/field-sales-api/internal/infra/http/middleware"
	"github.com/rajudas/field-sales-api/internal/infra/integration/ipapi"
	"github.com/rajudas/field-sales-api/internal/infra/integration/ipinfo"
	"github.com/rajudas/field-sales-api/internal/infra/mail"
	"github.com/rajudas/field-sales-api/internal/infra/photo"
	"github.com/rajudas/field-sales-api/internal/infra/queue"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedUsers(ctx, db); err != nil {
		log.Fatal(err)
	}

	// Reminders are optional: without AMQP the API runs, submissions just
	// skip the follow-up queue.
	var rabbit *queue.RabbitMQ
	var producer usecase.ReminderPublisherInterface
	if cfg.Queue.AMQPURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.Queue.AMQPURL)
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()
		producer = queue.NewProducer(rabbit.Conn, rabbit.Ch)

		mailer := mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
			cfg.Mail.User, cfg.Mail.To,
		)
		worker := queue.NewWorker(rabbit.Ch, mailer)
		go worker.Start(queue.QueueName)
	} else {
		log.Printf("AMQP_URL not set, follow-up reminders disabled")
	}

	// Repositories
	visitRepo := database.NewVisitRepository(db)
	userRepo := database.NewUserRepository(db)

	// Network-tier geolocation providers, tried in order
	geoTimeout := time.Duration(cfg.Geolocation.TimeoutSeconds) * time.Second
	ipapiClient := ipapi.NewClient(cfg.Geolocation.IPAPIBaseURL, geoTimeout)
	ipinfoClient := ipinfo.NewClient(cfg.Geolocation.IPInfoBaseURL, geoTimeout)

	// UseCases
	submitUC := usecase.NewSubmitVisitUseCase(visitRepo, photo.NewNormalizer(), producer)
	historyUC := usecase.NewStoreHistoryUseCase(visitRepo)
	dashboardUC := usecase.NewDashboardUseCase(visitRepo)
	resolveUC := usecase.NewResolveLocationUseCase(ipapiClient, ipinfoClient)
	loginUC := usecase.NewLoginUseCase(userRepo)

	// Handlers
	tokenTTL := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	authHandler := handlers.NewAuthHandler(loginUC, cfg.JWT.Secret, tokenTTL)
	visitHandler := handlers.NewVisitHandler(submitUC, historyUC)
	locationHandler := handlers.NewLocationHandler(resolveUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	exportHandler := handlers.NewExportHandler(dashboardUC)

	healthHandler := handlers.NewHealthHandler(db, nil)
	if rabbit != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbit.Conn)
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/login", authHandler.HandleLogin)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(cfg.JWT.Secret))

		r.Post("/visits", visitHandler.HandleSubmit)
		r.Get("/visits", dashboardHandler.HandleListVisits)
		r.Patch("/visits/lead-status", dashboardHandler.HandleBatchLeadStatus)
		r.Get("/dashboard/summary", dashboardHandler.HandleSummary)
		r.Get("/stores", visitHandler.HandleStoreNames)
		r.Get("/stores/{name}/last-visit", visitHandler.HandlePrefill)
		r.Post("/location/resolve", locationHandler.HandleResolve)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/visits/export", exportHandler.HandleExportCSV)
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("field-sales-api listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
