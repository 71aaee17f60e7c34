package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/chronocode/pkg/utils/credential"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := types.NewRequestID()
		logger := logging.Default().With(slog.String("request_id", reqID.String()))

		ctx := logging.With(r.Context(), logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// edgeGate redirects based on the presence of the session cookie and forwards
// the cookie value to backend calls made while serving the request. The
// credential itself is validated by the backend.
func edgeGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token types.AccessToken
		if c, err := r.Cookie(types.AccessTokenCookie); err == nil && c.Value != "" {
			token = types.AccessToken(c.Value)
		}

		if target, redirect := usecase.GateRoute(r.URL.Path, token != ""); redirect {
			logging.From(r.Context()).Debug("edge redirect",
				slog.String("path", r.URL.Path),
				slog.String("target", target),
			)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		ctx := r.Context()
		if token != "" {
			ctx = credential.With(ctx, token)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
