package filters

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort direction: %q", s)
	}
}

// SortField is a single (field, direction) pair. Fields are the public
// graph names, e.g. "symbol" or "currentPrice".
type SortField struct {
	Field     string
	Direction Direction
}

// Options limits and orders one result set. The zero value means
// unrestricted count and insertion order.
type Options struct {
	Limit   int64
	OrderBy []SortField
}

// Unrestricted reports whether no limit applies.
func (o Options) Unrestricted() bool {
	return o.Limit == 0
}

func (o Options) Validate(allowed map[string]string) error {
	if o.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", o.Limit)
	}

	seen := make(map[string]struct{}, len(o.OrderBy))
	for _, f := range o.OrderBy {
		if _, ok := allowed[f.Field]; !ok {
			return fmt.Errorf("field %q is not sortable", f.Field)
		}
		if f.Direction != Asc && f.Direction != Desc {
			return fmt.Errorf("invalid sort direction %q for field %q", f.Direction, f.Field)
		}
		if _, dup := seen[f.Field]; dup {
			return fmt.Errorf("field %q is ordered more than once", f.Field)
		}
		seen[f.Field] = struct{}{}
	}

	return nil
}

// TokenFilters holds the independent entity-level and market-data options
// of a token query.
type TokenFilters struct {
	Entity     Options
	MarketData Options
}

// DefaultTokenFilters is used when the caller does not send any options.
func DefaultTokenFilters() TokenFilters {
	return TokenFilters{}
}

func (f TokenFilters) Validate() error {
	if err := f.Entity.Validate(EntitySortFields); err != nil {
		return fmt.Errorf("invalid entity options: %w", err)
	}
	if err := f.MarketData.Validate(MarketDataSortFields); err != nil {
		return fmt.Errorf("invalid market data options: %w", err)
	}
	return nil
}
