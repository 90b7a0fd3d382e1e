package graphql

import (
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"
)

// relatedTokens indexes the tokens a result set refers to (underlying
// tokens, yield vault assets) by EntityID.String().
type relatedTokens map[string]*model.TokenDocument

func newRelatedTokens(docs []*model.TokenDocument) relatedTokens {
	related := make(relatedTokens, len(docs))
	for _, doc := range docs {
		related[doc.EntityID().String()] = doc
	}
	return related
}

func (rt relatedTokens) get(chain, address string) (*model.TokenDocument, bool) {
	doc, ok := rt[types.EntityID{Chain: types.SupportedChain(chain), Address: address}.String()]
	return doc, ok
}

// relatedIDs returns the distinct ids docs refer to.
func relatedIDs(docs []*model.TokenDocument) []types.EntityID {
	seen := map[string]struct{}{}
	var ids []types.EntityID
	add := func(chain, address string) {
		if address == "" {
			return
		}
		id := types.EntityID{Chain: types.SupportedChain(chain), Address: address}
		if _, ok := seen[id.String()]; ok {
			return
		}
		seen[id.String()] = struct{}{}
		ids = append(ids, id)
	}

	for _, doc := range docs {
		for _, u := range doc.UnderlyingTokens {
			add(doc.Chain, u.Address)
		}
		add(doc.Chain, doc.UnderlyingAddress)
	}
	return ids
}

type PriceChangeResolver struct {
	change finance.PriceChange
}

func (r *PriceChangeResolver) Price() float64  { return r.change.Price }
func (r *PriceChangeResolver) Change() float64 { return r.change.Change }

type MarketDataResolver struct {
	snapshot      model.MarketDataSnapshot
	entry         model.CurrencyData
	hasEntry      bool
	fromInception float64
	nav           float64
	deltaToNav    float64
}

func (r *MarketDataResolver) Timestamp() graphql.Time {
	return graphql.Time{Time: r.snapshot.Timestamp}
}

func (r *MarketDataResolver) CurrentPrice() float64      { return r.entry.Price }
func (r *MarketDataResolver) MarketCap() float64         { return r.entry.MarketCap }
func (r *MarketDataResolver) TotalVolume() float64       { return r.entry.Volume }
func (r *MarketDataResolver) AllTimeHigh() float64       { return r.entry.AllTimeHigh }
func (r *MarketDataResolver) AllTimeLow() float64        { return r.entry.AllTimeLow }
func (r *MarketDataResolver) CirculatingSupply() float64 { return r.snapshot.CirculatingSupply }
func (r *MarketDataResolver) TotalSupply() float64       { return r.snapshot.TotalSupply }
func (r *MarketDataResolver) Holders() float64           { return float64(r.snapshot.Holders) }
func (r *MarketDataResolver) MarketCapRank() float64     { return float64(r.snapshot.MarketCapRank) }
func (r *MarketDataResolver) SwapFee() float64           { return r.snapshot.SwapFee }
func (r *MarketDataResolver) ManagementFee() float64     { return r.snapshot.ManagementFee }
func (r *MarketDataResolver) FromInception() float64     { return r.fromInception }
func (r *MarketDataResolver) Nav() float64               { return r.nav }
func (r *MarketDataResolver) DeltaToNav() float64        { return r.deltaToNav }

func (r *MarketDataResolver) TwentyFourHourChange() *PriceChangeResolver {
	return &PriceChangeResolver{change: finance.TwentyFourHourChange(r.entry, r.hasEntry)}
}

type UnderlyingTokenMarketDataResolver struct {
	totalHeld      float64
	amountPerToken float64
	currentPrice   float64
	allocation     float64
	change         finance.PriceChange
}

func (r *UnderlyingTokenMarketDataResolver) TotalHeld() float64      { return r.totalHeld }
func (r *UnderlyingTokenMarketDataResolver) AmountPerToken() float64 { return r.amountPerToken }
func (r *UnderlyingTokenMarketDataResolver) CurrentPrice() float64   { return r.currentPrice }
func (r *UnderlyingTokenMarketDataResolver) Allocation() float64     { return r.allocation }

func (r *UnderlyingTokenMarketDataResolver) TwentyFourHourChange() *PriceChangeResolver {
	return &PriceChangeResolver{change: r.change}
}

type UnderlyingTokenResolver struct {
	token      model.UnderlyingToken
	marketData *UnderlyingTokenMarketDataResolver
}

func (r *UnderlyingTokenResolver) Address() string { return r.token.Address }
func (r *UnderlyingTokenResolver) Name() string    { return r.token.Name }
func (r *UnderlyingTokenResolver) Symbol() string  { return r.token.Symbol }
func (r *UnderlyingTokenResolver) Decimals() int32 { return r.token.Decimals }

func (r *UnderlyingTokenResolver) MarketData() *UnderlyingTokenMarketDataResolver {
	return r.marketData
}

type GovernanceResolver struct {
	proposal model.GovernanceProposal
}

func (r *GovernanceResolver) Title() string  { return r.proposal.Title }
func (r *GovernanceResolver) URL() string    { return r.proposal.URL }
func (r *GovernanceResolver) Status() string { return r.proposal.Status }

func (r *GovernanceResolver) Timestamp() graphql.Time {
	return graphql.Time{Time: r.proposal.Timestamp}
}

type TokenResolver struct {
	doc        *model.TokenDocument
	marketData []*MarketDataResolver
	underlying []*UnderlyingTokenResolver
}

func (r *TokenResolver) Chain() string       { return r.doc.Chain }
func (r *TokenResolver) Address() string     { return r.doc.Address }
func (r *TokenResolver) Kind() string        { return r.doc.Kind.String() }
func (r *TokenResolver) Name() string        { return r.doc.Name }
func (r *TokenResolver) Symbol() string      { return r.doc.Symbol }
func (r *TokenResolver) Decimals() int32     { return r.doc.Decimals }
func (r *TokenResolver) CoinGeckoID() string { return r.doc.CoinGeckoID }
func (r *TokenResolver) RiskGrade() string   { return r.doc.RiskGrade }

func (r *TokenResolver) InceptionDate() graphql.Time {
	return graphql.Time{Time: r.doc.InceptionDate}
}

func (r *TokenResolver) MarketData() []*MarketDataResolver {
	return r.marketData
}

func (r *TokenResolver) UnderlyingTokens() []*UnderlyingTokenResolver {
	return r.underlying
}

func (r *TokenResolver) Governance() []*GovernanceResolver {
	out := make([]*GovernanceResolver, 0, len(r.doc.Governance))
	for _, g := range r.doc.Governance {
		out = append(out, &GovernanceResolver{proposal: g})
	}
	return out
}

func newTokenResolver(
	doc *model.TokenDocument, currency string, opts filters.Options, related relatedTokens,
) *TokenResolver {
	latest, hasLatest := doc.LatestMarketData()

	underlying, underlyingValue := underlyingTokens(doc, latest, currency, related)

	var nav float64
	if hasLatest {
		nav = finance.Nav(underlyingValue, latest.TotalSupply)
	}

	return &TokenResolver{
		doc:        doc,
		marketData: marketData(doc.MarketData, currency, opts, latest.Timestamp, nav),
		underlying: underlying,
	}
}

// marketData shapes the snapshots in the requested currency. nav only
// describes the current composition so it is set on the latest snapshot.
func marketData(
	snapshots []model.MarketDataSnapshot, currency string, opts filters.Options, latest time.Time, nav float64,
) []*MarketDataResolver {
	var inceptionPrice float64
	if len(snapshots) > 0 {
		inceptionPrice = finance.CurrentPrice(snapshots[0].CurrencyData, currency)
	}

	ordered := filters.ApplyToMarketData(snapshots, opts, currency)
	out := make([]*MarketDataResolver, 0, len(ordered))
	for _, s := range ordered {
		entry, ok := finance.SelectCurrency(s.CurrencyData, currency)
		md := &MarketDataResolver{
			snapshot:      s,
			entry:         entry,
			hasEntry:      ok,
			fromInception: finance.PercentageChange(inceptionPrice, entry.Price),
		}
		if s.Timestamp.Equal(latest) {
			md.nav = nav
			md.deltaToNav = finance.DeltaToNav(entry.Price, nav)
		}
		out = append(out, md)
	}
	return out
}

// underlyingTokens resolves the composition of a pie and returns the total
// value of the underlying assets held.
func underlyingTokens(
	doc *model.TokenDocument, latest model.MarketDataSnapshot, currency string, related relatedTokens,
) ([]*UnderlyingTokenResolver, float64) {
	type asset struct {
		token model.UnderlyingToken
		held  decimal.Decimal
		price float64
		entry model.CurrencyData
		ok    bool
	}

	assets := make([]asset, 0, len(doc.UnderlyingTokens))
	var totalValue float64
	for _, u := range doc.UnderlyingTokens {
		h := asset{token: u}
		// malformed balances count as nothing held
		if held, err := finance.FormatBalance(u.Balance, u.Decimals); err == nil {
			h.held = held
		}
		if token, ok := related.get(doc.Chain, u.Address); ok {
			if md, ok := token.LatestMarketData(); ok {
				h.entry, h.ok = finance.SelectCurrency(md.CurrencyData, currency)
				h.price = h.entry.Price
			}
		}
		totalValue += finance.Value(h.held, h.price)
		assets = append(assets, h)
	}

	out := make([]*UnderlyingTokenResolver, 0, len(assets))
	for _, h := range assets {
		held := h.held.InexactFloat64()
		out = append(out, &UnderlyingTokenResolver{
			token: h.token,
			marketData: &UnderlyingTokenMarketDataResolver{
				totalHeld:      held,
				amountPerToken: finance.SafeDiv(held, latest.TotalSupply),
				currentPrice:   h.price,
				allocation:     finance.SafeDiv(finance.Value(h.held, h.price), totalValue) * 100,
				change:         finance.TwentyFourHourChange(h.entry, h.ok),
			},
		})
	}

	return out, totalValue
}
