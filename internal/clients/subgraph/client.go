package subgraph

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/client"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

const (
	balancesQuery = `query AccountBalances($account: ID!) {
  account(id: $account) {
    balances(first: 1000, where: { amount_gt: "0" }) {
      token { id }
      amount
    }
  }
}`

	pieStatsQuery = `query PieStats($id: ID!) {
  pie(id: $id) {
    holdersCount
    totalSupply
  }
}`
)

type Client struct {
	httpClient *http.Client
	cfg        *config.SubgraphConfig
}

func NewClient(cfg *config.SubgraphConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

// endpoint is the client.BaseClient of a single chain's subgraph.
type endpoint struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func (e *endpoint) GetBaseURL() string {
	return e.url
}

func (e *endpoint) GetDefaultRequestTimeout() time.Duration {
	return e.timeout
}

func (e *endpoint) GetHttpClient() *http.Client {
	return e.httpClient
}

func (c *Client) endpoint(chain types.SupportedChain) (*endpoint, error) {
	url, ok := c.cfg.Endpoints[chain.String()]
	if !ok {
		return nil, fmt.Errorf("no subgraph configured for chain %s", chain)
	}
	return &endpoint{
		url:        strings.TrimRight(url, "/"),
		timeout:    c.cfg.Timeout,
		httpClient: c.httpClient,
	}, nil
}

func (c *Client) GetAccountBalances(
	ctx context.Context, chain types.SupportedChain, account string,
) ([]AccountBalance, error) {
	type response struct {
		Account *struct {
			Balances []struct {
				Token struct {
					ID string `json:"id"`
				} `json:"token"`
				Amount bigIntString `json:"amount"`
			} `json:"balances"`
		} `json:"account"`
	}

	data, err := query[response](ctx, c, chain, "AccountBalances", balancesQuery, map[string]any{
		"account": strings.ToLower(account),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get balances of %s on %s: %w", account, chain, err)
	}

	balances := []AccountBalance{}
	if data.Account == nil {
		return balances, nil
	}
	for _, b := range data.Account.Balances {
		balances = append(balances, AccountBalance{
			Token:   strings.ToLower(b.Token.ID),
			Balance: string(b.Amount),
		})
	}

	return balances, nil
}

func (c *Client) GetPieStats(ctx context.Context, chain types.SupportedChain, address string) (*PieStats, error) {
	type response struct {
		Pie *struct {
			HoldersCount bigIntString `json:"holdersCount"`
			TotalSupply  bigIntString `json:"totalSupply"`
		} `json:"pie"`
	}

	data, err := query[response](ctx, c, chain, "PieStats", pieStatsQuery, map[string]any{
		"id": strings.ToLower(address),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats of pie %s on %s: %w", address, chain, err)
	}
	if data.Pie == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrPieNotIndexed, address, chain)
	}

	holders, err := data.Pie.HoldersCount.int64()
	if err != nil {
		return nil, fmt.Errorf("invalid holders count %q: %w", data.Pie.HoldersCount, err)
	}

	return &PieStats{
		Holders:     holders,
		TotalSupply: string(data.Pie.TotalSupply),
	}, nil
}

func query[T any](
	ctx context.Context, c *Client, chain types.SupportedChain, operation, q string, variables map[string]any,
) (*T, error) {
	e, err := c.endpoint(chain)
	if err != nil {
		return nil, err
	}

	opts := &client.HttpClientOptions{
		Path:         "",
		TemplatePath: "/" + operation,
	}
	req := &graphqlRequest{Query: q, Variables: variables}

	call := func() (*graphqlResponse[T], error) {
		return client.SendRequest[graphqlRequest, graphqlResponse[T]](ctx, e, http.MethodPost, opts, req)
	}

	resp, err := client.CallWithRetry(ctx, call, client.RetryOptions{
		Attempts: c.cfg.MaxRetryTimes,
		Delay:    c.cfg.RetryInterval,
	})
	if err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}
