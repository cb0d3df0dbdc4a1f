package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/models"
)

const (
	defaultIEXBaseURL = "https://cloud.iexapis.com/stable"
	maxReasonLen      = 256
)

// IEXOptions parameterise the IEX Cloud client.
type IEXOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// IEX fetches historical daily charts from IEX Cloud.
type IEX struct {
	token   string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewIEX constructs an IEX client.
func NewIEX(opts IEXOptions, logger zerolog.Logger) *IEX {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultIEXBaseURL
	}

	return &IEX{
		token:   opts.Token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "iex_client").Logger(),
	}
}

type chartBar struct {
	Date  string   `json:"date"`
	Close *float64 `json:"close"`
}

// FetchDailyBars calls GET {base}/stock/{symbol}/chart/{window}.
func (c *IEX) FetchDailyBars(ctx context.Context, symbol string, window models.Window) ([]models.PriceBar, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.chartURL(symbol, window), nil)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("build chart request: %w", stripURL(err)))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		err = stripURL(err)
		c.logger.Warn().Err(err).Str("symbol", symbol).Str("window", string(window)).Msg("upstream request failed")
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	c.logger.Debug().
		Str("symbol", symbol).
		Str("window", string(window)).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("chart fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Str("symbol", symbol).Int("status", resp.StatusCode).Msg("upstream returned non-success status")
		return nil, parseHTTPError(resp.StatusCode, payload)
	}

	return decodeChart(payload)
}

func (c *IEX) chartURL(symbol string, window models.Window) string {
	q := url.Values{}
	q.Set("token", c.token)
	return fmt.Sprintf("%s/stock/%s/chart/%s?%s", c.baseURL, url.PathEscape(symbol), window, q.Encode())
}

func decodeChart(payload []byte) ([]models.PriceBar, error) {
	var raw []chartBar
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperror.Internal(fmt.Errorf("decode chart: %w", err))
	}

	bars := make([]models.PriceBar, 0, len(raw))
	for _, b := range raw {
		if b.Close == nil {
			continue
		}
		d, err := time.Parse(models.DateLayout, b.Date)
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("decode chart date %q: %w", b.Date, err))
		}
		bars = append(bars, models.PriceBar{Date: d, Close: *b.Close})
	}
	return bars, nil
}

// parseHTTPError forwards the upstream's own body, or its reason phrase
// when the body is empty.
func parseHTTPError(status int, payload []byte) error {
	reason := strings.TrimSpace(string(payload))
	if reason == "" || strings.HasPrefix(reason, "<") {
		reason = http.StatusText(status)
	}
	if len(reason) > maxReasonLen {
		reason = reason[:maxReasonLen]
	}
	msg := "Request failed: " + reason

	if status == http.StatusNotFound {
		return apperror.New(apperror.KindUpstreamNotFound, msg)
	}
	if status < 400 {
		status = http.StatusBadGateway
	}
	return apperror.New(apperror.KindUpstreamFailure, msg).WithStatus(status)
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(apperror.KindUpstreamFailure, "Request failed: "+http.StatusText(http.StatusGatewayTimeout), err).
			WithStatus(http.StatusGatewayTimeout)
	}
	return apperror.Wrap(apperror.KindUpstreamFailure, "Request failed: "+http.StatusText(http.StatusBadGateway), err)
}

// stripURL drops the request URL from transport errors; it carries the token.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

var _ Provider = (*IEX)(nil)
