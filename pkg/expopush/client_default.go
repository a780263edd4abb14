package expopush

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/festibalparty/festibal-push-backend/pkg/validator"
	"github.com/segmentio/encoding/json"
)

type ClientDefaultConfig struct {
	Endpoint   string `validate:"required,url"`
	HTTPClient *http.Client
}

type ClientDefault struct {
	config ClientDefaultConfig
}

var _ Client = (*ClientDefault)(nil)

func NewClient(cfg ClientDefaultConfig) (*ClientDefault, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, fmt.Errorf("expopush client config error: %w", err)
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Transport: &RoundTripper{Base: http.DefaultTransport},
		}
	}

	return &ClientDefault{config: cfg}, nil
}

func (c *ClientDefault) SendBatch(ctx context.Context, messages []PushMessage) (BatchResult, error) {
	if len(messages) == 0 {
		return BatchResult{}, nil
	}

	reqBody, err := json.Marshal(messages)
	if err != nil {
		return BatchResult{}, fmt.Errorf("marshal push messages error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return BatchResult{}, fmt.Errorf("build push request error: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: read response body: %s", ErrUnavailable, err)
	}

	var decoded batchResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return BatchResult{}, fmt.Errorf("%w: non-json response: %s", ErrUnavailable, err)
	}

	if len(decoded.Data) == 0 {
		return BatchResult{RawBody: respBody}, ErrNoTickets
	}

	return BatchResult{
		Tickets: decoded.Data,
		RawBody: respBody,
	}, nil
}
