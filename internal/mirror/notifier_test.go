package mirror_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourdesk/config"
	"tourdesk/infras/kafka"
	kafkaMocks "tourdesk/infras/kafka/mocks"
	"tourdesk/internal/mirror"
)

func TestNotifier_Record_PublishesToConfiguredTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.External.Sheets.Enable = true
	cfg.Kafka.Topics.BookingMirror = "booking.mirror"

	summary := mirror.Summary{
		FullName: "Abebe Bikila",
		Email:    "abebe@example.com",
		Package:  "bale-mountains",
	}

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking.mirror", kafka.Message{
			Key:   summary.Email,
			Value: summary,
		}).
		Return(nil)

	notifier := mirror.NewNotifier(cfg, mockClient)

	assert.NoError(t, notifier.Record(context.Background(), summary))
}

func TestNotifier_Record_WrapsPublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.External.Sheets.Enable = true
	cfg.Kafka.Topics.BookingMirror = "booking.mirror"

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking.mirror", gomock.Any()).
		Return(errors.New("broker unreachable"))

	notifier := mirror.NewNotifier(cfg, mockClient)

	err := notifier.Record(context.Background(), mirror.Summary{Email: "a@b.c"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish booking summary")
}

func TestNotifier_DisabledMirrorIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No SendMessages expectation: the disabled notifier must never
	// touch the broker.
	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.External.Sheets.Enable = false

	notifier := mirror.NewNotifier(cfg, mockClient)

	assert.NoError(t, notifier.Record(context.Background(), mirror.Summary{Email: "a@b.c"}))
}
