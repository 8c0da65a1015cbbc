package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/IBM/sarama"

	"github.com/Cirillio/DonationApp/internal/config"
	"github.com/Cirillio/DonationApp/internal/handler"
	"github.com/Cirillio/DonationApp/internal/kafka"
	"github.com/Cirillio/DonationApp/internal/service"
	"github.com/Cirillio/DonationApp/internal/storage/memory"
	redisstore "github.com/Cirillio/DonationApp/internal/storage/redis"
	"github.com/Cirillio/DonationApp/internal/validation"
	"github.com/Cirillio/DonationApp/pkg/logger"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Components struct {
	HttpServer      *handler.Server
	Redis           *redisstore.Redis
	PaymentConsumer *kafka.PaymentConsumer
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	var (
		store      service.Store
		redisStore *redisstore.Redis
	)
	if len(cfg.Redis.Addrs) > 0 {
		var err error
		redisStore, err = redisstore.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Error("redis error", "error", err.Error())
			return nil, fmt.Errorf("components.init.InitComponents.redis failed: %w", err)
		}
		store = redisStore
	} else {
		log.Warn("redis is not configured, sessions are kept in memory only")
		store = memory.NewMemory()
	}

	validator := validation.New()
	donationService := service.NewService(log, store, validator, cfg.Session.TTL)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	render := service.NewRender(cwd+"/templates", log)

	var paymentConsumer *kafka.PaymentConsumer
	if len(cfg.Kafka.BrokerList) > 0 {
		saramaConfig := sarama.NewConfig()
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
		saramaConfig.Consumer.Return.Errors = true

		consumer, err := sarama.NewConsumer(cfg.Kafka.BrokerList, saramaConfig)
		if err != nil {
			log.Error("components.init.InitComponents.consumer: failed to create consumer client", "error", err.Error())
			return nil, fmt.Errorf("components.init.InitComponents: consumer client failed to init: %w", err)
		}
		paymentConsumer = kafka.NewPaymentConsumer(*cfg, log, consumer, donationService)
	} else {
		log.Warn("kafka is not configured, payment results are accepted over HTTP stub only")
	}

	httpServer := handler.NewServer(ctx, cfg, log, donationService, render)

	return &Components{
		HttpServer:      httpServer,
		Redis:           redisStore,
		PaymentConsumer: paymentConsumer,
	}, nil
}

func (c *Components) Shutdown() error {
	var errs []error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	if c.PaymentConsumer != nil {
		if err := c.PaymentConsumer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka client: %w", err))
		}
	}

	if err := c.HttpServer.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close Http Server: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

func SetupLogger(env string) *slog.Logger {
	var l *slog.Logger

	switch env {
	case envLocal:
		l = logger.SetupPrettySlog()
	case envDev:
		l = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		l = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log.Printf("unknown env %q, using local logger", env)
		l = logger.SetupPrettySlog()
	}

	return l
}
