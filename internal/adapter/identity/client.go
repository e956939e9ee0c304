package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/accountsvc/internal/infrastructure/metrics"
)

// Lookup results reported to metrics.
const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Client implements usecase.OwnerChecker against the external identity
// service. Every outcome is reduced to a boolean: only a 200 response counts
// as an existing owner; error statuses, timeouts and transport failures all
// count as absent (fail closed).
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewClient creates a new identity Client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}
}

// Exists reports whether the owner is known to the identity service.
func (c *Client) Exists(ctx context.Context, ownerID int64) bool {
	start := time.Now()

	url := fmt.Sprintf("%s/users/%d", c.baseURL, ownerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn().Err(err).Int64("owner_id", ownerID).Msg("identity lookup request build failed")
		c.observe(resultError, start)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("owner_id", ownerID).Str("url", url).Msg("identity lookup failed")
		c.observe(resultError, start)
		return false
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK {
		c.observe(resultFound, start)
		return true
	}

	c.logger.Debug().Int64("owner_id", ownerID).Int("status", resp.StatusCode).Msg("owner not confirmed by identity service")
	c.observe(resultNotFound, start)

	return false
}

func (c *Client) observe(result string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.OwnerLookups.WithLabelValues(result).Inc()
	c.metrics.OwnerLookupDuration.Observe(time.Since(start).Seconds())
}
