package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"tourdesk/config"
	"tourdesk/di"
	"tourdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		<-sigCh
		log.Info().Msg("Received shutdown signal, stopping mirror relay.")

		cancel()
	}()

	relay := di.InitializeRelay()
	relay.Run(ctx)
}
