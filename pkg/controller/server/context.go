package server

import (
	"context"

	"github.com/m-mizutani/chronocode/pkg/utils/credential"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
)

// DetachContext creates a new context.Background() based context that inherits
// logger, request ID, clock and session credential from the original
// context. Work that must finish after the response is sent runs on it.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))
	bgCtx = logging.InheritContextValues(bgCtx, ctx)

	if token, ok := credential.From(ctx); ok {
		bgCtx = credential.With(bgCtx, token)
	}

	return bgCtx
}
