package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/platform/config"
)

const (
	// retryBaseDelay is the first backoff step; subsequent attempts double it.
	retryBaseDelay = 500 * time.Millisecond

	// requestsPerSecond guards the provider's request quota from bursts of
	// concurrent conversions.
	requestsPerSecond = 5
	requestBurst      = 5
)

// Client fetches live exchange rates from an exchangerate-api.com style endpoint:
// GET {baseURL}/{apiKey}/latest/{BASE} returning a conversion_rates mapping.
type Client struct {
	client     *resty.Client
	apiKey     string
	maxRetries int
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Ensure Client implements the RateProvider port.
var _ portssvc.RateProvider = (*Client)(nil)

// NewClient creates a rate provider client from configuration. The HTTP timeout is
// applied per attempt; expiry surfaces as ErrUpstreamUnavailable.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ExchangeRateAPIURL, "/")).
		SetTimeout(cfg.ExchangeRateTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client:     client,
		apiKey:     cfg.ExchangeRateAPIKey,
		maxRetries: cfg.ExchangeRateMaxRetries,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:     logger,
	}
}

// latestRatesResponse mirrors the provider's /latest payload. On failure the
// provider sets result to "error" and error-type to a stable identifier.
type latestRatesResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// FetchRates performs one logical fetch of all rates for the given base currency,
// retrying transient failures with exponential backoff.
func (c *Client) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	path := fmt.Sprintf("/%s/latest/%s", c.apiKey, strings.ToUpper(base))

	resp, err := c.doWithRetry(ctx, path)
	if err != nil {
		return nil, err
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrUpstreamAuth, code)
	case code >= 400 && code < 500:
		// The provider reports the reason in the body; fall through to parse it.
	case code != http.StatusOK:
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrUpstreamUnavailable, code)
	}

	var parsed latestRatesResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFormat, err)
	}

	if parsed.Result != "success" {
		return nil, mapProviderError(parsed.ErrorType)
	}
	if len(parsed.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: conversion_rates missing from response", apperrors.ErrUpstreamFormat)
	}

	for code, r := range parsed.ConversionRates {
		if r.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: non-positive rate %s for %s", apperrors.ErrUpstreamFormat, r, code)
		}
	}

	c.logger.Debug("Fetched upstream rates",
		slog.String("base", parsed.BaseCode),
		slog.Int("count", len(parsed.ConversionRates)),
	)
	return parsed.ConversionRates, nil
}

// doWithRetry executes the GET, retrying network errors and 5xx responses. Client
// errors (4xx) are returned to the caller for error-type mapping.
func (c *Client) doWithRetry(ctx context.Context, path string) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
		}

		resp, err = c.client.R().SetContext(ctx).Get(path)
		if err == nil && resp.StatusCode() < 500 {
			return resp, nil
		}

		if attempt < c.maxRetries-1 {
			delay := retryBaseDelay << attempt
			c.logger.Warn("Upstream rate request failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", delay),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, ctx.Err())
			}
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode())
}

// mapProviderError converts the provider's error-type field into the app taxonomy.
func mapProviderError(errorType string) error {
	switch errorType {
	case "invalid-key", "inactive-account":
		return fmt.Errorf("%w: %s", apperrors.ErrUpstreamAuth, errorType)
	case "unsupported-code":
		return fmt.Errorf("%w: base currency not supported by provider", apperrors.ErrUnsupportedCurrency)
	case "quota-reached":
		return fmt.Errorf("%w: provider quota reached", apperrors.ErrUpstreamUnavailable)
	case "":
		return fmt.Errorf("%w: provider reported failure without error type", apperrors.ErrUpstreamFormat)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUpstreamFormat, errorType)
	}
}
