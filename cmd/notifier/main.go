package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	confirmationRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/confirmation"
	brevoClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/brevo"
	notificationsService "github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
	"github.com/m04kA/SMC-ClassBookingService/internal/worker"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClassBookingService/pkg/mq"
)

// Воркер очереди уведомлений: читает booking.confirmed и отправляет письма через Brevo
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClassBookingService notifier...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	consumer, err := mq.NewConsumer(mq.ConsumerConfig{
		URL:      cfg.RabbitMQ.URL,
		Exchange: cfg.RabbitMQ.Exchange,
		Queue:    cfg.RabbitMQ.Queue,
		Keys:     []string{notificationsService.RoutingKeyBookingConfirmed},
		Prefetch: cfg.RabbitMQ.Prefetch,
		DLX:      cfg.RabbitMQ.DLX,
	})
	if err != nil {
		log.Fatal("Failed to connect to rabbitmq: %v", err)
	}
	defer consumer.Close()

	brevo := brevoClient.NewClient(
		cfg.Brevo.URL,
		cfg.Brevo.APIKey,
		brevoClient.Contact{Name: cfg.Brevo.SenderName, Email: cfg.Brevo.SenderEmail},
		time.Duration(cfg.Brevo.Timeout)*time.Second,
		log,
	)
	notifier := notificationsService.NewEmailNotifier(brevo, cfg.Brevo.AdminEmail, log)

	w := worker.NewWorker(consumer, notifier, confirmationRepo.NewRepository(db), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Consuming %s from queue %s", notificationsService.RoutingKeyBookingConfirmed, cfg.RabbitMQ.Queue)
	if err := w.Run(ctx); err != nil {
		log.Error("Worker stopped with error: %v", err)
		return
	}
	log.Info("Notifier stopped gracefully")
}
