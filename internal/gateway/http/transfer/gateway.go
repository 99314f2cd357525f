package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "transfer-provider"

	listPath = "/transactions/list"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrProviderUnavailable = apperr.ExternalUnavailable("transfer provider unavailable")

type Config struct {
	BaseURL       string
	Token         string
	AccountNumber string
	Limit         int
	Timeout       time.Duration
	Location      *time.Location
}

type gatewayLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// httpStatusError не-2xx ответ провайдера.
type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("provider responded with %d %s", e.code, http.StatusText(e.code))
}

type TransferGateway struct {
	client   doer
	retrier  retrier
	endpoint *url.URL
	cfg      Config
	log      gatewayLogger
}

func New(client doer, cfg Config, log gatewayLogger) (*TransferGateway, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, errors.New("provider url must be absolute")
	}
	parsed.Path = path.Join(parsed.Path, listPath)

	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &TransferGateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: parsed,
		cfg:      cfg,
		log:      log,
	}, nil
}

// ListRecentTransfers возвращает последние входящие переводы на счет платформы
// ровно на указанную сумму. Любой сбой провайдера возвращается как ExternalUnavailable.
func (g *TransferGateway) ListRecentTransfers(ctx context.Context, amount int64) ([]entities.Transfer, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	var payload listResponse
	err := g.executeWithMetrics(ctx, "ListTransactions", func(ctx context.Context) error {
		payload = listResponse{}
		return g.fetch(ctx, amount, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway transfer, list: %w: %v", ErrProviderUnavailable, err)
	}
	if payload.Error != nil && *payload.Error != "" {
		return nil, fmt.Errorf("gateway transfer, list: %w: %s", ErrProviderUnavailable, *payload.Error)
	}

	transfers := make([]entities.Transfer, 0, len(payload.Transactions))
	for _, dto := range payload.Transactions {
		if dto.AccountNumber != "" && dto.AccountNumber != g.cfg.AccountNumber {
			continue
		}
		t, err := toDomain(dto, g.cfg.Location)
		if err != nil {
			SkippedTransfersTotal.Inc()
			g.log.Warn("skip statement row",
				logger.NewField("txn_id", dto.ID),
				logger.NewField("error", err.Error()),
			)
			continue
		}
		if t.Amount != amount {
			continue
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

func (g *TransferGateway) fetch(ctx context.Context, amount int64, out *listResponse) error {
	endpoint := *g.endpoint
	query := endpoint.Query()
	query.Set("account_number", g.cfg.AccountNumber)
	query.Set("amount_in", strconv.FormatInt(amount, 10))
	query.Set("limit", strconv.Itoa(g.cfg.Limit))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.Token)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &httpStatusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// Ретраим сетевые сбои, 429 и 5xx. Остальные коды и битое тело постоянны.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (g *TransferGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "UNKNOWN"
}
