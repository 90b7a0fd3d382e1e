package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/client"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/rs/zerolog/log"
)

const marketsEndpoint = "/coins/markets"

// maxIDsPerRequest keeps the query string and the page size within the
// upstream limits (250 per page).
const maxIDsPerRequest = 100

const apiKeyHeader = "x-cg-pro-api-key"

type Client struct {
	httpClient *http.Client
	cfg        *config.CoinGeckoConfig
}

func (c *Client) GetBaseURL() string {
	return strings.TrimRight(c.cfg.URL, "/")
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func NewClient(cfg *config.CoinGeckoConfig) *Client {
	if cfg == nil {
		cfg = config.DefaultCoinGeckoConfig()
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetMarkets(ctx context.Context, ids []string, currency types.Currency) ([]CoinMarket, error) {
	if len(ids) == 0 {
		return []CoinMarket{}, nil
	}

	markets := make([]CoinMarket, 0, len(ids))
	for start := 0; start < len(ids); start += maxIDsPerRequest {
		end := min(start+maxIDsPerRequest, len(ids))

		batch, err := c.getMarketsBatch(ctx, ids[start:end], currency)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s markets: %w", currency, err)
		}
		markets = append(markets, batch...)
	}

	return markets, nil
}

func (c *Client) getMarketsBatch(ctx context.Context, ids []string, currency types.Currency) ([]CoinMarket, error) {
	type empty struct{}

	query := url.Values{}
	query.Set("vs_currency", currency.String())
	query.Set("ids", strings.Join(ids, ","))
	query.Set("per_page", fmt.Sprint(maxIDsPerRequest))
	query.Set("page", "1")

	opts := &client.HttpClientOptions{
		Path:         marketsEndpoint + "?" + query.Encode(),
		TemplatePath: marketsEndpoint,
	}
	if c.cfg.APIKey != "" {
		opts.Headers = map[string]string{apiKeyHeader: c.cfg.APIKey}
	}

	call := func() ([]marketResponse, error) {
		resp, err := client.SendRequest[empty, []marketResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		return *resp, nil
	}

	resp, err := client.CallWithRetry(ctx, call, client.RetryOptions{
		Attempts: c.cfg.MaxRetryTimes,
		Delay:    c.cfg.RetryInterval,
	})
	if err != nil {
		return nil, err
	}

	markets := make([]CoinMarket, 0, len(resp))
	for _, r := range resp {
		if r.ID == "" {
			log.Ctx(ctx).Warn().Str("currency", currency.String()).Msg("skipping coingecko market without id")
			continue
		}
		markets = append(markets, r.normalise(currency))
	}

	return markets, nil
}
