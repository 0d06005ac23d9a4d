// Package laposte implements the La Poste "suivi v2" tracking API client.
package laposte

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
	"github.com/99minutos/tracking-system/internal/pkg/metrics"
)

const (
	DefaultBaseURL = "https://api.laposte.fr/suivi/v2"
	defaultTimeout = 10 * time.Second
	okapiKeyHeader = "X-Okapi-Key"
)

// Config captures the settings of the carrier client.
type Config struct {
	BaseURL  string
	OkapiKey string
	Timeout  time.Duration
}

// Client fetches tracking data from La Poste.
type Client struct {
	baseURL  string
	okapiKey string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient returns a Client. Empty settings fall back to the public endpoint
// and a 10s timeout.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  base,
		okapiKey: cfg.OkapiKey,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

var _ ports.CarrierClient = (*Client)(nil)

// FetchTracking performs GET {base}/idships/{tracking number}.
func (c *Client) FetchTracking(ctx context.Context, tn domain.TrackingNumber) (*ports.RawTracking, error) {
	if tn.IsZero() {
		return nil, domain.ErrInvalidTrackingNumber
	}

	endpoint := c.baseURL + "/idships/" + url.PathEscape(tn.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(okapiKeyHeader, c.okapiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CarrierRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("tracking", tn.String()).Msg("carrier request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrCarrierUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.CarrierRequestDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, domain.ErrCarrierRejectedFormat
	case http.StatusUnauthorized:
		return nil, domain.ErrCarrierUnauthorized
	case http.StatusNotFound:
		return nil, domain.ErrParcelNotFound
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCarrierUnavailable, resp.StatusCode)
	}

	var body trackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrCarrierUnavailable, err)
	}
	return body.toRaw(), nil
}
