package graphql

import (
	"context"
	"fmt"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/rs/zerolog/log"
)

// Resolver is the root query resolver. Every query validates its arguments
// before touching the repositories.
type Resolver struct {
	db       db.DbInterface
	subgraph subgraph.SubgraphInterface
	reporter reporter.Reporter
}

func NewResolver(db db.DbInterface, sg subgraph.SubgraphInterface, rep reporter.Reporter) *Resolver {
	if rep == nil {
		rep = reporter.NewNoopReporter()
	}
	return &Resolver{
		db:       db,
		subgraph: sg,
		reporter: rep,
	}
}

func (r *Resolver) Token(ctx context.Context, args entityArgs) (*TokenResolver, error) {
	return r.tokenByID(ctx, "token", types.KindToken, args)
}

func (r *Resolver) Tokens(ctx context.Context, args listArgs) ([]*TokenResolver, error) {
	return r.tokenList(ctx, "tokens", types.KindToken, args)
}

func (r *Resolver) PieSmartPool(ctx context.Context, args entityArgs) (*TokenResolver, error) {
	return r.tokenByID(ctx, "pieSmartPool", types.KindPieSmartPool, args)
}

func (r *Resolver) PieSmartPools(ctx context.Context, args listArgs) ([]*TokenResolver, error) {
	return r.tokenList(ctx, "pieSmartPools", types.KindPieSmartPool, args)
}

func (r *Resolver) PieVault(ctx context.Context, args entityArgs) (*TokenResolver, error) {
	return r.tokenByID(ctx, "pieVault", types.KindPieVault, args)
}

func (r *Resolver) PieVaults(ctx context.Context, args listArgs) ([]*TokenResolver, error) {
	return r.tokenList(ctx, "pieVaults", types.KindPieVault, args)
}

// TokensBySymbol matches symbols case-insensitively across every kind.
// Entity options are validated but the result keeps insertion order.
func (r *Resolver) TokensBySymbol(ctx context.Context, args symbolsArgs) ([]*TokenResolver, error) {
	const operation = "tokensBySymbol"

	currency, err := parseCurrency(args.Currency)
	if err != nil {
		return nil, err
	}
	opts, err := parseOptions(args.Options)
	if err != nil {
		return nil, err
	}

	docs, err := r.db.FindTokensBySymbols(ctx, args.Symbols)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, fmt.Errorf("failed to find tokens by symbol: %w", err))
	}

	return r.tokenResolvers(ctx, operation, docs, currency, opts)
}

func (r *Resolver) YieldVault(ctx context.Context, args entityArgs) (*YieldVaultResolver, error) {
	const operation = "yieldVault"

	id, currency, opts, err := parseEntityQuery(args)
	if err != nil {
		return nil, err
	}

	doc, err := r.db.FindTokenByID(ctx, types.KindYieldVault, id)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, err)
	}

	vaults, err := r.yieldVaultResolvers(ctx, []*model.TokenDocument{doc}, currency, opts)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, err)
	}
	return vaults[0], nil
}

func (r *Resolver) YieldVaults(ctx context.Context, args listArgs) ([]*YieldVaultResolver, error) {
	const operation = "yieldVaults"

	currency, err := parseCurrency(args.Currency)
	if err != nil {
		return nil, err
	}
	opts, err := parseOptions(args.Options)
	if err != nil {
		return nil, err
	}

	docs, err := r.db.FindTokens(ctx, types.KindYieldVault, opts.Entity)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, fmt.Errorf("failed to find yield vaults: %w", err))
	}

	vaults, err := r.yieldVaultResolvers(ctx, docs, currency, opts)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, err)
	}
	return vaults, nil
}

func (r *Resolver) User(ctx context.Context, args userArgs) (*UserResolver, error) {
	id, err := parseEntityID(args.Chain, args.Address)
	if err != nil {
		return nil, err
	}
	currency, err := parseCurrency(args.Currency)
	if err != nil {
		return nil, err
	}

	user, err := r.resolveUser(ctx, id, currency)
	if err != nil {
		return nil, r.toGraphqlError(ctx, "user", err)
	}
	return user, nil
}

func parseEntityQuery(args entityArgs) (types.EntityID, string, filters.TokenFilters, error) {
	id, err := parseEntityID(args.Chain, args.Address)
	if err != nil {
		return types.EntityID{}, "", filters.TokenFilters{}, err
	}
	currency, err := parseCurrency(args.Currency)
	if err != nil {
		return types.EntityID{}, "", filters.TokenFilters{}, err
	}
	opts, err := parseOptions(args.Options)
	if err != nil {
		return types.EntityID{}, "", filters.TokenFilters{}, err
	}
	return id, currency, opts, nil
}

func (r *Resolver) tokenByID(
	ctx context.Context, operation string, kind types.TokenKind, args entityArgs,
) (*TokenResolver, error) {
	id, currency, opts, err := parseEntityQuery(args)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().Str("operation", operation).Str("id", id.String()).Msg("resolving entity")

	doc, err := r.db.FindTokenByID(ctx, kind, id)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, err)
	}

	tokens, err := r.tokenResolvers(ctx, operation, []*model.TokenDocument{doc}, currency, opts)
	if err != nil {
		return nil, err
	}
	return tokens[0], nil
}

func (r *Resolver) tokenList(
	ctx context.Context, operation string, kind types.TokenKind, args listArgs,
) ([]*TokenResolver, error) {
	currency, err := parseCurrency(args.Currency)
	if err != nil {
		return nil, err
	}
	opts, err := parseOptions(args.Options)
	if err != nil {
		return nil, err
	}

	docs, err := r.db.FindTokens(ctx, kind, opts.Entity)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, fmt.Errorf("failed to find %s: %w", kind, err))
	}

	return r.tokenResolvers(ctx, operation, docs, currency, opts)
}

func (r *Resolver) tokenResolvers(
	ctx context.Context, operation string, docs []*model.TokenDocument, currency string, opts filters.TokenFilters,
) ([]*TokenResolver, error) {
	related, err := r.loadRelated(ctx, docs)
	if err != nil {
		return nil, r.toGraphqlError(ctx, operation, err)
	}

	out := make([]*TokenResolver, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newTokenResolver(doc, currency, opts.MarketData, related))
	}
	return out, nil
}

func (r *Resolver) yieldVaultResolvers(
	ctx context.Context, docs []*model.TokenDocument, currency string, opts filters.TokenFilters,
) ([]*YieldVaultResolver, error) {
	if len(docs) == 0 {
		return []*YieldVaultResolver{}, nil
	}

	related, err := r.loadRelated(ctx, docs)
	if err != nil {
		return nil, err
	}
	// a vault asset can itself be a pie, whose nav needs its constituents
	if err := r.loadAssetConstituents(ctx, docs, related); err != nil {
		return nil, err
	}

	ids := make([]types.EntityID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.EntityID())
	}
	strategies, err := r.db.FindStrategiesByVaults(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find vault strategies: %w", err)
	}
	grouped := strategiesByVault(strategies)

	out := make([]*YieldVaultResolver, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newYieldVaultResolver(doc, currency, opts.MarketData, related, grouped))
	}
	return out, nil
}

// loadRelated fetches every token docs refer to in one query.
func (r *Resolver) loadRelated(ctx context.Context, docs []*model.TokenDocument) (relatedTokens, error) {
	ids := relatedIDs(docs)
	if len(ids) == 0 {
		return relatedTokens{}, nil
	}

	found, err := r.db.FindTokensByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find related tokens: %w", err)
	}
	return newRelatedTokens(found), nil
}

// loadAssetConstituents adds to related the tokens the vaults' underlying
// assets refer to, skipping those already loaded.
func (r *Resolver) loadAssetConstituents(ctx context.Context, vaults []*model.TokenDocument, related relatedTokens) error {
	var assets []*model.TokenDocument
	for _, vault := range vaults {
		if asset, ok := related.get(vault.Chain, vault.UnderlyingAddress); ok {
			assets = append(assets, asset)
		}
	}

	var ids []types.EntityID
	for _, id := range relatedIDs(assets) {
		if _, ok := related[id.String()]; !ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	found, err := r.db.FindTokensByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to find vault asset constituents: %w", err)
	}
	for _, doc := range found {
		related[doc.EntityID().String()] = doc
	}
	return nil
}
