package mirror

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourdesk/config"
	"tourdesk/infras/kafka"

	"github.com/rs/zerolog/log"
)

// Notifier hands a booking summary to the spreadsheet side channel.
// Callers must treat errors as advisory: the booking is already
// committed by the time Record runs.
type Notifier interface {
	Record(ctx context.Context, summary Summary) error
}

type kafkaNotifier struct {
	config *config.Config
	client kafka.Client
}

type noopNotifier struct{}

func NewNotifier(cfg *config.Config, client kafka.Client) Notifier {
	if !cfg.External.Sheets.Enable {
		log.Info().Msg("Spreadsheet mirror disabled, bookings will not be mirrored")

		return &noopNotifier{}
	}

	return &kafkaNotifier{
		config: cfg,
		client: client,
	}
}

func (n *kafkaNotifier) Record(ctx context.Context, summary Summary) error {
	message := kafka.Message{
		Key:   summary.Email,
		Value: summary,
	}

	err := n.client.SendMessages(ctx, n.config.Kafka.Topics.BookingMirror, message)
	if err != nil {
		return fmt.Errorf("failed to publish booking summary: %w", err)
	}

	return nil
}

func (n *noopNotifier) Record(_ context.Context, _ Summary) error {
	return nil
}
