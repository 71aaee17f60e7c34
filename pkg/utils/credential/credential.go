package credential

import (
	"context"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

type ctxAccessTokenKey struct{}

// With returns a new context carrying the session credential of the caller.
func With(ctx context.Context, token types.AccessToken) context.Context {
	return context.WithValue(ctx, ctxAccessTokenKey{}, token)
}

// From returns the session credential stored in ctx, if any.
func From(ctx context.Context) (types.AccessToken, bool) {
	token, ok := ctx.Value(ctxAccessTokenKey{}).(types.AccessToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
