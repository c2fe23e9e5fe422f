// launching the server, postgres, redis, worker
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/contactremind/config"
	repository "github.com/ds124wfegd/contactremind/internal/database/postgres"
	"github.com/ds124wfegd/contactremind/internal/service"
	"github.com/ds124wfegd/contactremind/internal/transport"
	"github.com/ds124wfegd/contactremind/internal/worker"

	"github.com/ds124wfegd/contactremind/pkg/mailer"
	"github.com/ds124wfegd/contactremind/pkg/postgres"
	"github.com/ds124wfegd/contactremind/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	reminderRepo := repository.NewReminderRepository(db)
	specialDateRepo := repository.NewSpecialDateRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Redis cache for the settings lookups of the scheduler
	redisClient := redis.NewRedisClient(&cfg.Redis)
	defer redisClient.Close()

	settingsResolver := service.NewSettingsResolver(userRepo, redisClient, cfg.Redis.SettingsCacheTTL)

	// Transactional email collaborator
	mailClient := mailer.NewClient(&cfg.Email)
	if cfg.Email.APIKey == "" {
		logrus.Warn("Email API key not provided, email dispatch will fail until configured")
	}

	// Initialize services
	schedulerService := service.NewSchedulerService(
		reminderRepo,
		specialDateRepo,
		notificationRepo,
		userRepo,
		settingsResolver,
		mailClient,
		cfg.Scheduler.Concurrency,
	)
	reminderService := service.NewReminderService(reminderRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	settingsService := service.NewSettingsService(userRepo, settingsResolver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize periodic check worker
	if cfg.Scheduler.Enabled {
		checkWorker := worker.NewUpcomingCheckWorker(schedulerService, cfg.Scheduler.Interval)
		go checkWorker.Start(ctx)
		logrus.Info("Upcoming check worker started")
	}

	// Initialize handlers
	schedulerHandler := transport.NewSchedulerHandler(schedulerService)
	reminderHandler := transport.NewReminderHandler(reminderService)
	notificationHandler := transport.NewNotificationHandler(notificationService)
	settingsHandler := transport.NewSettingsHandler(settingsService)

	// Setup HTTP server
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(schedulerHandler, reminderHandler, notificationHandler, settingsHandler)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
