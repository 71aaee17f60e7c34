package errutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/utils/errutil"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newCtx(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	return logging.With(context.Background(), logger)
}

func TestHandleError(t *testing.T) {
	t.Run("logs message with request ID", func(t *testing.T) {
		var buf bytes.Buffer
		reqID, ctx := logging.CtxRequestID(newCtx(&buf))

		err := goerr.New("timeline fetch failed", goerr.V("repo_id", 42))
		errutil.HandleError(ctx, "upstream error", err)

		out := buf.String()
		gt.S(t, out).Contains("upstream error")
		gt.S(t, out).Contains("timeline fetch failed")
		gt.S(t, out).Contains(reqID.String())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		errutil.HandleError(newCtx(&buf), "nothing", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
