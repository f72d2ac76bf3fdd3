package sheets

//go:generate go run go.uber.org/mock/mockgen -source=./sheets.go -destination=./mocks/sheets_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"tourdesk/config"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	appendTimeout = 10 * time.Second
)

// Client appends rows to the external spreadsheet webhook. The sheet is a
// convenience mirror, not a system of record; callers treat every error as
// recoverable.
type Client interface {
	AppendRow(ctx context.Context, row []string) error
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) Client {
	return &clientImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: appendTimeout,
		},
	}
}

type appendRequest struct {
	Values []string `json:"values"`
}

func (c *clientImpl) AppendRow(ctx context.Context, row []string) error {
	if !c.config.External.Sheets.Enable || c.config.External.Sheets.WebhookURL == "" {
		log.Debug().Msg("Spreadsheet mirror disabled, skipping append")

		return nil
	}

	body, err := json.Marshal(appendRequest{Values: row})
	if err != nil {
		return fmt.Errorf("failed to marshal sheet row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.External.Sheets.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheet request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to append row to sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return failure.InternalError(fmt.Errorf("sheet webhook responded with status %d", resp.StatusCode))
	}

	log.Info().Int("columns", len(row)).Msg("Appended booking row to spreadsheet mirror")

	return nil
}
