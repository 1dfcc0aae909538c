package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/api"
	checkoutHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/checkout"
	draftsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/drafts"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_available_slots"
	getClassHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_class"
	handleWebhookHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/handle_webhook"
	listClassesHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/list_classes"
	listConfirmationsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/list_confirmations"
	sendContactHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/send_contact"
	verifyPaymentHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/confirmation"
	draftRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/draft"
	brevoClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/brevo"
	stripeClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/stripe"
	bookingsService "github.com/m04kA/SMC-ClassBookingService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-ClassBookingService/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
	notificationsService "github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
	reconcilerService "github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
	createCheckoutUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/create_checkout"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"
	handleWebhookUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/handle_webhook"
	sendContactMessageUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/send_contact_message"
	verifyPaymentUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/verify_payment"
	"github.com/m04kA/SMC-ClassBookingService/internal/validation"
	"github.com/m04kA/SMC-ClassBookingService/migrations"
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/mq"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClassBookingService...")
	if !cfg.Features.CheckoutEnabled {
		log.Warn("Checkout is disabled by features.checkout_enabled")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции журнала подтверждений
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = migrations.Up(migrateCtx, db)
	migrateCancel()
	if err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Журнал подтверждений (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	confirmationRepository := confirmationRepo.NewRepository(executor)

	// Redis для черновиков бронирования
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	draftRepository := draftRepo.NewRepository(redisClient, time.Duration(cfg.Redis.DraftTTL)*time.Minute)
	log.Info("Draft storage initialized (redis=%s, ttl=%dm)", cfg.Redis.Addr, cfg.Redis.DraftTTL)

	// Инициализируем интеграционных клиентов
	stripe := stripeClient.NewClient(stripeClient.Options{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		Currency:      cfg.Stripe.Currency,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
		APIURL:        cfg.Stripe.APIURL,
	}, time.Duration(cfg.Stripe.Timeout)*time.Second, log)
	if cfg.Stripe.WebhookSecret == "" {
		log.Warn("STRIPE_WEBHOOK_SECRET is empty, webhook endpoint will reject all events")
	}

	brevo := brevoClient.NewClient(
		cfg.Brevo.URL,
		cfg.Brevo.APIKey,
		brevoClient.Contact{Name: cfg.Brevo.SenderName, Email: cfg.Brevo.SenderEmail},
		time.Duration(cfg.Brevo.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Brevo=%s timeout=%ds, Stripe timeout=%ds)",
		cfg.Brevo.URL, cfg.Brevo.Timeout, cfg.Stripe.Timeout)

	// Уведомления: сразу через Brevo или через очередь
	emailNotifier := notificationsService.NewEmailNotifier(brevo, cfg.Brevo.AdminEmail, log)
	var notifier reconcilerService.Notifier = emailNotifier
	if cfg.Notifications.Mode == config.NotificationModeQueue {
		publisher, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer publisher.Close()
		notifier = notificationsService.NewQueueNotifier(publisher, log)
		log.Info("Notifications are published to exchange %s", cfg.RabbitMQ.Exchange)
	}

	// Календарь и каталог
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	calendar := calendarService.New(calendarService.Options{
		Template:                domain.NewWeeklyTemplate(cfg.Schedule.WeeklyHours()),
		Holidays:                domain.NewHolidayCalendar(cfg.Schedule.Holidays),
		Location:                location,
		AdvanceBookingDays:      cfg.Booking.AdvanceBookingDays,
		MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
	})
	catalog := catalogService.NewService(catalogService.DefaultClasses(), log)
	validator := validation.New()

	// Инициализируем сервисы
	reconciler := reconcilerService.NewReconciler(stripe, confirmationRepository, notifier, metricsCollector, log)
	draftSvc := bookingsService.NewService(draftRepository, catalog, calendar, validator, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalog, calendar, log)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		stripe,
		catalog,
		calendar,
		draftRepository,
		validator,
		cfg.Features.CheckoutEnabled,
		log,
	)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(reconciler, log)
	handleWebhookUseCase := handleWebhookUC.NewUseCase(stripe, reconciler, log)
	sendContactMessageUseCase := sendContactMessageUC.NewUseCase(emailNotifier, validator, log)

	// Инициализируем handlers и роутер
	r := api.NewRouter(&api.Handlers{
		ListClasses:       listClassesHandler.NewHandler(catalog, log),
		GetClass:          getClassHandler.NewHandler(catalog, log),
		AvailableSlots:    getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		Drafts:            draftsHandler.NewHandler(draftSvc, log),
		Checkout:          checkoutHandler.NewHandler(createCheckoutUseCase, log),
		VerifyPayment:     verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log),
		Webhook:           handleWebhookHandler.NewHandler(handleWebhookUseCase, log),
		Contact:           sendContactHandler.NewHandler(sendContactMessageUseCase, log),
		ListConfirmations: listConfirmationsHandler.NewHandler(confirmationRepository, log),
	}, api.RouterOptions{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		ServiceName: cfg.Metrics.ServiceName,
		AdminToken:  cfg.Admin.Token,
	})
	if cfg.Admin.Token == "" {
		log.Warn("ADMIN_TOKEN is empty, admin routes are closed")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
