package graphql

import (
	"regexp"
	"strings"

	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

type OrderByInput struct {
	Field     string
	Direction string
}

type FilterOptionsInput struct {
	Limit   *int32
	OrderBy *[]OrderByInput
}

type OptionsInput struct {
	Entity     *FilterOptionsInput
	MarketData *FilterOptionsInput
}

type entityArgs struct {
	Chain    string
	Address  string
	Currency string
	Options  *OptionsInput
}

type listArgs struct {
	Currency string
	Options  *OptionsInput
}

type symbolsArgs struct {
	Symbols  []string
	Currency string
	Options  *OptionsInput
}

type userArgs struct {
	Chain    string
	Address  string
	Currency string
}

var currencyRegexp = regexp.MustCompile(`^[a-z]{2,10}$`)

// parseCurrency only checks the shape of the code. A well-formed code with
// no stored data resolves to zero values, not to an error.
func parseCurrency(currency string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(currency))
	if !currencyRegexp.MatchString(c) {
		return "", types.NewValidationError("invalid currency: %q", currency)
	}
	return c, nil
}

func parseEntityID(chain, address string) (types.EntityID, error) {
	id, err := types.ParseEntityID(chain, address)
	if err != nil {
		return types.EntityID{}, types.NewError(types.BadUserInput, err)
	}
	return id, nil
}

// parseOptions converts and validates the options against the sortable
// field allow-lists. Missing options mean the defaults.
func parseOptions(in *OptionsInput) (filters.TokenFilters, error) {
	f := filters.DefaultTokenFilters()
	if in == nil {
		return f, nil
	}

	var err error
	if f.Entity, err = parseFilterOptions(in.Entity); err != nil {
		return f, err
	}
	if f.MarketData, err = parseFilterOptions(in.MarketData); err != nil {
		return f, err
	}

	if err := f.Validate(); err != nil {
		return f, types.NewError(types.BadUserInput, err)
	}
	return f, nil
}

func parseFilterOptions(in *FilterOptionsInput) (filters.Options, error) {
	var o filters.Options
	if in == nil {
		return o, nil
	}

	if in.Limit != nil {
		o.Limit = int64(*in.Limit)
	}
	if in.OrderBy != nil {
		for _, ob := range *in.OrderBy {
			direction, err := filters.ParseDirection(ob.Direction)
			if err != nil {
				return o, types.NewError(types.BadUserInput, err)
			}
			o.OrderBy = append(o.OrderBy, filters.SortField{Field: ob.Field, Direction: direction})
		}
	}

	return o, nil
}
