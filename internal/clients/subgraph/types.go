package subgraph

import (
	"errors"
	"strconv"
	"strings"
)

// ErrPieNotIndexed is returned by GetPieStats for addresses the subgraph
// does not know.
var ErrPieNotIndexed = errors.New("pie is not indexed")

type AccountBalance struct {
	Token string
	// Balance is the raw integer amount.
	Balance string
}

type PieStats struct {
	Holders int64
	// TotalSupply is the raw integer supply.
	TotalSupply string
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphqlError `json:"errors"`
}

func (r graphqlResponse[T]) err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}
	return errors.New("subgraph returned errors: " + strings.Join(messages, "; "))
}

// bigIntString accepts both quoted and bare numbers, subgraphs return
// BigInt as strings and Int as numbers.
type bigIntString string

func (b *bigIntString) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*b = bigIntString(s)
	return nil
}

func (b bigIntString) int64() (int64, error) {
	if b == "" {
		return 0, nil
	}
	return strconv.ParseInt(string(b), 10, 64)
}
