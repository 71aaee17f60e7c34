package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/chronocode/pkg/controller/server"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/utils/credential"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	t.Run("inherits logger from original context", func(t *testing.T) {
		originalCtx := context.Background()
		customLogger := slog.Default().With("test", "value")
		originalCtx = logging.With(originalCtx, customLogger)

		bgCtx := server.DetachContext(originalCtx)

		gt.V(t, logging.From(bgCtx)).Equal(customLogger)
	})

	t.Run("inherits request ID and clock", func(t *testing.T) {
		originalCtx := context.Background()
		reqID, originalCtx := logging.CtxRequestID(originalCtx)
		fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		originalCtx = logging.WithClock(originalCtx, func() time.Time {
			return fixedTime
		})

		bgCtx := server.DetachContext(originalCtx)

		inheritedReqID, _ := logging.CtxRequestID(bgCtx)
		gt.V(t, inheritedReqID).Equal(reqID)
		gt.V(t, logging.Now(bgCtx)).Equal(fixedTime)
	})

	t.Run("inherits session credential", func(t *testing.T) {
		originalCtx := credential.With(context.Background(), types.AccessToken("secret"))

		bgCtx := server.DetachContext(originalCtx)

		token, ok := credential.From(bgCtx)
		gt.True(t, ok)
		gt.V(t, token.Raw()).Equal("secret")

		_, ok = credential.From(server.DetachContext(context.Background()))
		gt.False(t, ok)
	})

	t.Run("detached context is not cancelled when original is cancelled", func(t *testing.T) {
		originalCtx, cancel := context.WithCancel(context.Background())

		bgCtx := server.DetachContext(originalCtx)
		cancel()

		gt.V(t, originalCtx.Err()).Equal(context.Canceled)
		gt.V(t, bgCtx.Err()).Equal(nil)
	})
}
