package mirror

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/kafka"
	"tourdesk/infras/sheets"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Relay consumes booking summaries from the mirror topic and appends
// them to the external spreadsheet. It runs out of band in the worker
// process so a slow or failing sheet never touches the request path.
type Relay struct {
	config *config.Config
	client kafka.Client
	sheets sheets.Client
}

func NewRelay(cfg *config.Config, client kafka.Client, sheets sheets.Client) *Relay {
	return &Relay{
		config: cfg,
		client: client,
		sheets: sheets,
	}
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	log.Info().Str("topic", r.config.Kafka.Topics.BookingMirror).Msg("Mirror relay started")

	r.client.Consume(ctx, r.config.Kafka.ConsumerGroup, r.config.Kafka.Topics.BookingMirror, r.handle)
}

func (r *Relay) handle(msg kafkaGo.Message) {
	summary, err := kafka.DecodeKafkaMessage[Summary](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking summary, skipping")

		return
	}

	if err := r.sheets.AppendRow(context.Background(), summary.Row()); err != nil {
		log.Error().Err(err).Str("email", summary.Email).Msg("failed to append booking summary to spreadsheet")

		return
	}
}
