package graphql

import (
	"context"
	"errors"

	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

// toGraphqlError converts err into a *types.Error so the executor exposes
// its code. Unexpected errors are reported and their message is hidden.
func (r *Resolver) toGraphqlError(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}

	var typedErr *types.Error
	if errors.As(err, &typedErr) {
		if typedErr.ErrorCode == types.UpstreamError || typedErr.ErrorCode == types.InternalServiceError {
			r.report(ctx, operation, err)
		}
		return typedErr
	}

	if db.IsNotFoundError(err) {
		return types.NewError(types.NotFound, err)
	}

	r.report(ctx, operation, err)
	return types.NewInternalServiceError(errors.New("internal service error"))
}

func (r *Resolver) report(ctx context.Context, operation string, err error) {
	r.reporter.CaptureException(ctx, err, map[string]string{
		reporter.ComponentTag: "graphql",
		"operation":           operation,
	})
}
