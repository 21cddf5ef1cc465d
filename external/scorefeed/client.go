package scorefeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

const (
	defaultBaseURL   = "https://feed.scoreboard.dev/v1"
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 4 << 20
	retryBackoffUnit = time.Second
)

var bearerTokenRegex = regexp.MustCompile(`Bearer\s+\S+`)
var errScoreFeedTransient = crerr.New("scorefeed transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchPlayerScores(ctx context.Context, playerID int64) ([]usecase.ExternalScore, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("player id must be greater than zero")
	}

	path := "/players/" + strconv.FormatInt(playerID, 10) + "/scores"
	var envelope scoresEnvelope
	if err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch scores player_id=%d: %w", playerID, err)
	}

	out := make([]usecase.ExternalScore, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		recordedAt := parseFeedTime(item.RecordedAt)
		out = append(out, usecase.ExternalScore{
			PlayerID:   item.PlayerID,
			Points:     item.Points,
			RecordedAt: recordedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})

	return out, nil
}

type scoresEnvelope struct {
	Data []scoreItem `json:"data"`
}

type scoreItem struct {
	PlayerID   int64  `json:"playerId"`
	Points     int    `json:"points"`
	RecordedAt string `json:"recordedAt"`
}

func parseFeedTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC()
	}
	return time.Time{}
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "scorefeed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: score feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	buf := bytebufferpool.Get()
	buf.WriteString(c.baseURL)
	buf.WriteString(path)
	if encoded := values.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		buf.WriteString(encoded)
	}
	fullURL := buf.String()
	bytebufferpool.Put(buf)

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isScoreFeedCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.sendOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, errScoreFeedTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * retryBackoffUnit
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "scorefeed request failed", "url", fullURL, "error", sanitizeSensitiveText(lastErr.Error(), c.token))
	return nil, lastErr
}

func (c *Client) sendOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %s", errScoreFeedTransient, sanitizeSensitiveText(err.Error(), c.token))
	}

	status := resp.StatusCode()
	body := resp.Body()
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("feed response too large: %d bytes", len(body))
	}

	if status >= 200 && status < 300 {
		// The response buffer is reused once released; hand back a copy.
		return append([]byte(nil), body...), nil
	}

	if isRetryableStatus(status) {
		return nil, fmt.Errorf("%w: feed status=%d body=%s", errScoreFeedTransient, status, abbreviateBody(body))
	}
	return nil, fmt.Errorf("feed status=%d body=%s", status, abbreviateBody(body))
}

func isScoreFeedCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errScoreFeedTransient) || stderrors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	}
	return false
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerTokenRegex.ReplaceAllString(value, "Bearer REDACTED")
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
