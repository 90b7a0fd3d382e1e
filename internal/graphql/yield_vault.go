package graphql

import (
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
	"github.com/graph-gophers/graphql-go"
)

type LinkResolver struct {
	link model.Link
}

func (r *LinkResolver) Title() string { return r.link.Title }
func (r *LinkResolver) URL() string   { return r.link.URL }

type YieldSnapshotResolver struct {
	snapshot model.YieldSnapshot
}

func (r *YieldSnapshotResolver) APR() float64 { return r.snapshot.APR }
func (r *YieldSnapshotResolver) APY() float64 { return r.snapshot.APY.Value }

func (r *YieldSnapshotResolver) CompoundingFrequency() string {
	return r.snapshot.APY.CompoundingFrequency.String()
}

func (r *YieldSnapshotResolver) Timestamp() graphql.Time {
	return graphql.Time{Time: r.snapshot.Timestamp}
}

type StrategyResolver struct {
	doc *model.YieldVaultStrategyDocument
}

func (r *StrategyResolver) Chain() string                 { return r.doc.Chain }
func (r *StrategyResolver) Address() string               { return r.doc.Address }
func (r *StrategyResolver) Title() string                 { return r.doc.Title }
func (r *StrategyResolver) Description() string           { return r.doc.Description }
func (r *StrategyResolver) AllocationPercentage() float64 { return r.doc.AllocationPercentage }

func (r *StrategyResolver) Links() []*LinkResolver {
	out := make([]*LinkResolver, 0, len(r.doc.Links))
	for _, l := range r.doc.Links {
		out = append(out, &LinkResolver{link: l})
	}
	return out
}

func (r *StrategyResolver) LatestYield() *YieldSnapshotResolver {
	latest, ok := r.doc.LatestYield()
	if !ok {
		return nil
	}
	return &YieldSnapshotResolver{snapshot: latest}
}

func (r *StrategyResolver) YieldData() []*YieldSnapshotResolver {
	out := make([]*YieldSnapshotResolver, 0, len(r.doc.YieldData))
	for _, s := range r.doc.YieldData {
		out = append(out, &YieldSnapshotResolver{snapshot: s})
	}
	return out
}

// Interests is the yield of a vault: the allocation weighted average of
// the latest yield of its strategies.
type Interests struct {
	APR float64
	APY float64
}

func vaultInterests(strategies []*model.YieldVaultStrategyDocument) Interests {
	var aprs, apys []finance.Weighted
	for _, s := range strategies {
		latest, ok := s.LatestYield()
		if !ok {
			continue
		}
		aprs = append(aprs, finance.Weighted{Value: latest.APR, Weight: s.AllocationPercentage})
		apys = append(apys, finance.Weighted{Value: latest.APY.Value, Weight: s.AllocationPercentage})
	}
	return Interests{
		APR: finance.WeightedAverage(aprs),
		APY: finance.WeightedAverage(apys),
	}
}

type InterestsResolver struct {
	interests Interests
}

func (r *InterestsResolver) APR() float64 { return r.interests.APR }
func (r *InterestsResolver) APY() float64 { return r.interests.APY }

type YieldVaultResolver struct {
	*TokenResolver
	underlyingToken *TokenResolver
	strategies      []*model.YieldVaultStrategyDocument
}

func (r *YieldVaultResolver) UnderlyingToken() *TokenResolver {
	return r.underlyingToken
}

func (r *YieldVaultResolver) Strategies() []*StrategyResolver {
	out := make([]*StrategyResolver, 0, len(r.strategies))
	for _, s := range r.strategies {
		out = append(out, &StrategyResolver{doc: s})
	}
	return out
}

func (r *YieldVaultResolver) Interests() *InterestsResolver {
	return &InterestsResolver{interests: vaultInterests(r.strategies)}
}

// strategiesByVault groups strategies by the EntityID.String() of their vault.
func strategiesByVault(strategies []*model.YieldVaultStrategyDocument) map[string][]*model.YieldVaultStrategyDocument {
	grouped := make(map[string][]*model.YieldVaultStrategyDocument)
	for _, s := range strategies {
		key := vaultKey(s.Chain, s.VaultAddress)
		grouped[key] = append(grouped[key], s)
	}
	return grouped
}

func vaultKey(chain, address string) string {
	return chain + ":" + address
}

func newYieldVaultResolver(
	doc *model.TokenDocument,
	currency string,
	opts filters.Options,
	related relatedTokens,
	strategies map[string][]*model.YieldVaultStrategyDocument,
) *YieldVaultResolver {
	r := &YieldVaultResolver{
		TokenResolver: newTokenResolver(doc, currency, opts, related),
		strategies:    strategies[vaultKey(doc.Chain, doc.Address)],
	}
	if underlying, ok := related.get(doc.Chain, doc.UnderlyingAddress); ok {
		r.underlyingToken = newTokenResolver(underlying, currency, filters.Options{}, related)
	}
	if r.strategies == nil {
		r.strategies = []*model.YieldVaultStrategyDocument{}
	}
	return r
}
