package graphql

import (
	"context"
	"fmt"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// holding is an account balance of a known entity, valued in the requested
// currency.
type holding struct {
	doc     *model.TokenDocument
	balance decimal.Decimal
	// price and inceptionPrice are the first and current stored prices
	price          float64
	inceptionPrice float64
	change         finance.PriceChange
}

func (h holding) value() float64 {
	return finance.Value(h.balance, h.price)
}

// dayChange is the value change of the holding over the last 24h.
func (h holding) dayChange() float64 {
	return finance.Value(h.balance, h.change.Price)
}

// profit is the value gained since the first stored price.
func (h holding) profit() float64 {
	if h.inceptionPrice == 0 {
		return 0
	}
	return finance.Value(h.balance, h.price-h.inceptionPrice)
}

// inceptionValue is the value at the first stored price, 0 for holdings
// without one so that it covers the same holdings as profit.
func (h holding) inceptionValue() float64 {
	if h.inceptionPrice == 0 {
		return 0
	}
	return finance.Value(h.balance, h.inceptionPrice)
}

func newHolding(doc *model.TokenDocument, balance decimal.Decimal, currency string) holding {
	h := holding{doc: doc, balance: balance}
	if latest, ok := doc.LatestMarketData(); ok {
		entry, ok := finance.SelectCurrency(latest.CurrencyData, currency)
		h.price = entry.Price
		h.change = finance.TwentyFourHourChange(entry, ok)
	}
	if len(doc.MarketData) > 0 {
		h.inceptionPrice = finance.CurrentPrice(doc.MarketData[0].CurrencyData, currency)
	}
	return h
}

type PositionResolver struct {
	h holding
}

func (r *PositionResolver) Chain() string   { return r.h.doc.Chain }
func (r *PositionResolver) Address() string { return r.h.doc.Address }
func (r *PositionResolver) Kind() string    { return r.h.doc.Kind.String() }
func (r *PositionResolver) Name() string    { return r.h.doc.Name }
func (r *PositionResolver) Symbol() string  { return r.h.doc.Symbol }
func (r *PositionResolver) Balance() string { return r.h.balance.String() }
func (r *PositionResolver) Value() float64  { return r.h.value() }
func (r *PositionResolver) Profit() float64 { return r.h.profit() }

func (r *PositionResolver) CurrentPrice() float64 {
	return r.h.price
}

func (r *PositionResolver) Performance() float64 {
	return finance.PercentageChange(r.h.inceptionPrice, r.h.price)
}

func (r *PositionResolver) TwentyFourHourChange() *PriceChangeResolver {
	return &PriceChangeResolver{change: finance.PriceChange{
		Price:  r.h.dayChange(),
		Change: r.h.change.Change,
	}}
}

type YieldVaultPositionResolver struct {
	h         holding
	interests Interests
}

func (r *YieldVaultPositionResolver) Chain() string   { return r.h.doc.Chain }
func (r *YieldVaultPositionResolver) Address() string { return r.h.doc.Address }
func (r *YieldVaultPositionResolver) Name() string    { return r.h.doc.Name }
func (r *YieldVaultPositionResolver) Symbol() string  { return r.h.doc.Symbol }
func (r *YieldVaultPositionResolver) Balance() string { return r.h.balance.String() }
func (r *YieldVaultPositionResolver) Value() float64  { return r.h.value() }
func (r *YieldVaultPositionResolver) APR() float64    { return r.interests.APR }
func (r *YieldVaultPositionResolver) APY() float64    { return r.interests.APY }

// TwentyFourHourEarnings estimates what the position earns in a day at the
// current vault APR.
func (r *YieldVaultPositionResolver) TwentyFourHourEarnings() float64 {
	return r.h.value() * r.interests.APR / 365
}

func (r *YieldVaultPositionResolver) TotalEarnings() float64 {
	return r.h.profit()
}

type UserResolver struct {
	id          types.EntityID
	positions   []*PositionResolver
	yieldVaults []*YieldVaultPositionResolver
}

func (r *UserResolver) Chain() string   { return r.id.Chain.String() }
func (r *UserResolver) Address() string { return r.id.Address }

func (r *UserResolver) Positions() []*PositionResolver {
	return r.positions
}

func (r *UserResolver) YieldVaults() []*YieldVaultPositionResolver {
	return r.yieldVaults
}

func (r *UserResolver) holdings() []holding {
	out := make([]holding, 0, len(r.positions)+len(r.yieldVaults))
	for _, p := range r.positions {
		out = append(out, p.h)
	}
	for _, y := range r.yieldVaults {
		out = append(out, y.h)
	}
	return out
}

func (r *UserResolver) TotalBalance() float64 {
	var total float64
	for _, h := range r.holdings() {
		total += h.value()
	}
	return total
}

func (r *UserResolver) Profit() float64 {
	var profit float64
	for _, h := range r.holdings() {
		profit += h.profit()
	}
	return profit
}

// Performance is the profit relative to the value at inception prices.
// Holdings without an inception price are left out of both sides.
func (r *UserResolver) Performance() float64 {
	var base, profit float64
	for _, h := range r.holdings() {
		base += h.inceptionValue()
		profit += h.profit()
	}
	return finance.PercentageChange(base, base+profit)
}

func (r *UserResolver) TwentyFourHourChange() *PriceChangeResolver {
	var change float64
	for _, h := range r.holdings() {
		change += h.dayChange()
	}
	total := r.TotalBalance()
	return &PriceChangeResolver{change: finance.PriceChange{
		Price:  change,
		Change: finance.PercentageChange(total-change, total),
	}}
}

// resolveUser builds the positions of an account from its subgraph balances.
// Balances of unknown entities and zero balances are skipped.
func (r *Resolver) resolveUser(ctx context.Context, id types.EntityID, currency string) (*UserResolver, error) {
	balances, err := r.subgraph.GetAccountBalances(ctx, id.Chain, id.Address)
	if err != nil {
		return nil, types.NewError(types.UpstreamError, fmt.Errorf("failed to fetch balances: %w", err))
	}

	amounts := make(map[string]subgraph.AccountBalance, len(balances))
	ids := make([]types.EntityID, 0, len(balances))
	for _, b := range balances {
		tokenID := types.EntityID{Chain: id.Chain, Address: b.Token}
		if _, dup := amounts[tokenID.String()]; dup {
			continue
		}
		amounts[tokenID.String()] = b
		ids = append(ids, tokenID)
	}

	docs, err := r.db.FindTokensByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load user tokens: %w", err)
	}

	user := &UserResolver{
		id:          id,
		positions:   []*PositionResolver{},
		yieldVaults: []*YieldVaultPositionResolver{},
	}

	var vaults []*model.TokenDocument
	holdings := make(map[string]holding, len(docs))
	for _, doc := range docs {
		b := amounts[doc.EntityID().String()]
		balance, err := finance.FormatBalance(b.Balance, doc.Decimals)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("token", doc.EntityID().String()).Msg("skipping malformed balance")
			continue
		}
		if balance.IsZero() {
			continue
		}

		h := newHolding(doc, balance, currency)
		if doc.Kind == types.KindYieldVault {
			holdings[doc.EntityID().String()] = h
			vaults = append(vaults, doc)
			continue
		}
		user.positions = append(user.positions, &PositionResolver{h: h})
	}

	if len(vaults) == 0 {
		return user, nil
	}

	vaultIDs := make([]types.EntityID, 0, len(vaults))
	for _, v := range vaults {
		vaultIDs = append(vaultIDs, v.EntityID())
	}
	strategies, err := r.db.FindStrategiesByVaults(ctx, vaultIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault strategies: %w", err)
	}
	grouped := strategiesByVault(strategies)

	for _, v := range vaults {
		user.yieldVaults = append(user.yieldVaults, &YieldVaultPositionResolver{
			h:         holdings[v.EntityID().String()],
			interests: vaultInterests(grouped[vaultKey(v.Chain, v.Address)]),
		})
	}

	return user, nil
}
