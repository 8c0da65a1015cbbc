package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Cirillio/DonationApp/cmd/app"
	_ "github.com/Cirillio/DonationApp/docs"
	"github.com/Cirillio/DonationApp/internal/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Println(err.Error())
		return
	}

	logger := app.SetupLogger(cfg.Env)

	var wg sync.WaitGroup

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, os.Interrupt, syscall.SIGTERM)

	comp, err := app.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("Bad configuration", slog.String("error", err.Error()))
		return
	}

	// Запускаем HTTP сервер
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comp.HttpServer.Run(ctx); err != nil {
			logger.Error("failed to run HttpServer", slog.String("error", err.Error()))
		}
	}()

	// Запускаем консьюмер платёжных событий
	if comp.PaymentConsumer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := comp.PaymentConsumer.Consume(ctx); err != nil {
				logger.Error("payment consumer failed", slog.String("error", err.Error()))
			}
		}()
	}

	// Ждём сигнал завершения
	<-sigQuit
	logger.Info("Received shutdown signal, stopping...")

	cancel()

	if err := comp.Shutdown(); err != nil {
		logger.Error("Error during shutdown", slog.String("error", err.Error()))
	}

	wg.Wait()

	logger.Info("The program has exited")
}
