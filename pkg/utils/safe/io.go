package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/chronocode/pkg/utils/logging"
)

// Close closes closer and logs a failure with the logger in ctx. A nil closer
// and io.EOF are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("failed to close resource", slog.Any("error", err))
	}
}
