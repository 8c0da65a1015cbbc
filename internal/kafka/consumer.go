// Package kafka принимает события об итогах платежей от внешнего
// платёжного контура. Сам шлюз остаётся вне репозитория; здесь только
// канал, которым отложенный результат доезжает до мастера сеанса.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-playground/validator/v10"

	"github.com/Cirillio/DonationApp/internal/config"
	"github.com/Cirillio/DonationApp/internal/domain"
)

// PaymentEvent — сообщение платёжного контура о завершении платежа.
type PaymentEvent struct {
	SessionID string `json:"session_id" validate:"required"`
	Success   bool   `json:"success"`
	PaymentID string `json:"payment_id"`
}

type PaymentCompleter interface {
	CompletePayment(ctx context.Context, sessionID string, result domain.PaymentResult) error
}

type PaymentConsumer struct {
	cfg       config.Config
	logger    *slog.Logger
	consumer  sarama.Consumer
	donations PaymentCompleter
	validator *validator.Validate
	errChan   chan error
	wg        sync.WaitGroup
	topic     string
}

func NewPaymentConsumer(cfg config.Config, logger *slog.Logger, consumer sarama.Consumer, donations PaymentCompleter) *PaymentConsumer {
	return &PaymentConsumer{
		cfg:       cfg,
		logger:    logger,
		consumer:  consumer,
		donations: donations,
		validator: validator.New(),
		errChan:   make(chan error, 10),
		topic:     cfg.Kafka.Topic,
	}
}

func (pc *PaymentConsumer) Consume(ctx context.Context) error {
	partitions, err := pc.consumer.Partitions(pc.topic)
	if err != nil {
		return fmt.Errorf("get partitions: %w", err)
	}

	var mu sync.Mutex
	var errs []error

	for _, partition := range partitions {
		p, err := pc.consumer.ConsumePartition(pc.topic, partition, sarama.OffsetNewest)
		if err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("consume partition %d: %w", partition, err))
			mu.Unlock()
			pc.logger.Error("failed to consume partition", "partition", partition, "error", err)
			continue
		}

		pc.wg.Add(1)
		go pc.consumePartition(ctx, p, partition, &mu, &errs)
	}

	pc.wg.Wait()
	close(pc.errChan)

	select {
	case e := <-pc.errChan:
		return e
	default:
		if len(errs) > 0 {
			return errors.Join(errs...)
		}
		if ctx.Err() == context.Canceled {
			pc.logger.Info("context canceled, consumer finished")
			return ctx.Err()
		}
		return nil
	}
}

func (pc *PaymentConsumer) consumePartition(
	ctx context.Context,
	p sarama.PartitionConsumer,
	partition int32,
	mu *sync.Mutex,
	errs *[]error) {

	defer pc.wg.Done()
	defer func() {
		if err := p.Close(); err != nil {
			pc.logger.Error("failed to close partition consumer", "partition", partition, "error", err)
			mu.Lock()
			*errs = append(*errs, err)
			mu.Unlock()
		}
	}()

	for {
		select {
		case msg, ok := <-p.Messages():
			if !ok {
				pc.logger.Info("message channel closed", "partition", partition)
				return
			}

			var event PaymentEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				pc.logger.Error("failed to unmarshal payment event", "error", err)
				continue
			}

			if err := pc.validator.Struct(event); err != nil {
				pc.logger.Error("payment event validation failed", "error", err.Error())
				continue
			}

			result := domain.PaymentResult{Success: event.Success, PaymentID: event.PaymentID}

			var procErr error
			for attempt := 0; attempt <= pc.cfg.Kafka.MaxRetries; attempt++ {
				procErr = pc.donations.CompletePayment(ctx, event.SessionID, result)
				if procErr == nil {
					break
				}
				if attempt < pc.cfg.Kafka.MaxRetries {
					pc.logger.Warn("payment completion attempt failed",
						"attempt", attempt,
						"partition", partition,
						"error", procErr.Error())
					backoff := pc.cfg.Kafka.InitialBackoff * time.Duration(1<<attempt)
					select {
					case <-time.After(backoff):
					case <-ctx.Done():
						pc.logger.Info("context canceled during backoff", "partition", partition)
						return
					}
				}
			}

			if procErr != nil {
				pc.logger.Error("payment event dropped",
					"session", event.SessionID, "error", procErr.Error())
				mu.Lock()
				*errs = append(*errs, procErr)
				mu.Unlock()
			}

		case err, ok := <-p.Errors():
			if !ok {
				pc.logger.Info("error channel closed", "partition", partition)
				return
			}
			pc.logger.Error("partition consumer error", "error", err.Err)
			mu.Lock()
			*errs = append(*errs, err.Err)
			mu.Unlock()
			select {
			case pc.errChan <- fmt.Errorf("partition consumer error: %w", err.Err):
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			pc.logger.Info("context canceled, shutting down partition consumer", "partition", partition)
			return
		}
	}
}

func (pc *PaymentConsumer) Close() error {
	return pc.consumer.Close()
}
