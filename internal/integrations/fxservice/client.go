package fxservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client клиент сервиса курсов валют
type Client struct {
	baseURL    string
	base       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса курсов
// base - валюта, относительно которой запрашиваются курсы
func NewClient(baseURL, base string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    strings.ToUpper(base),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRates получает курсы относительно base
func (c *Client) GetRates(ctx context.Context, base string) (*RatesResponse, error) {
	endpoint := fmt.Sprintf("%s/rates?base=%s", c.baseURL, url.QueryEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBase, base)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rates RatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !strings.EqualFold(rates.Base, base) || len(rates.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rates or base mismatch (got %q)", ErrInvalidResponse, rates.Base)
	}

	return &rates, nil
}

// Rates возвращает курсы относительно базовой валюты клиента
// Базовая валюта всегда присутствует с курсом 1; неположительные курсы отбрасываются
func (c *Client) Rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	resp, err := c.GetRates(ctx, c.base)
	if err != nil {
		c.log.Warn("FX service request failed for base=%s: %v", c.base, err)
		return nil, err
	}

	result := make(map[string]decimal.Decimal, len(resp.Rates)+1)
	for code, rate := range resp.Rates {
		if !rate.IsPositive() {
			c.log.Warn("FX service returned non-positive rate %s for %s, skipping", rate, code)
			continue
		}
		result[strings.ToUpper(code)] = rate
	}
	result[c.base] = decimal.NewFromInt(1)

	c.log.Info("Fetched %d FX rates for base=%s (date=%s)", len(result), c.base, resp.Date)
	return result, nil
}
