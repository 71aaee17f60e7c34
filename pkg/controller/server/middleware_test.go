package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/controller/server"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/chronocode/pkg/utils/credential"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger with request_id to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/probe", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/probe", nil))

		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)
	})

	t.Run("statusCodeLogger passes status codes through", func(t *testing.T) {
		testCases := map[string]int{
			"ok":        http.StatusOK,
			"not found": http.StatusNotFound,
			"bad gw":    http.StatusBadGateway,
		}

		for name, code := range testCases {
			t.Run(name, func(t *testing.T) {
				srv := server.New(usecase.New(infra.New()))
				mux := srv.Mux()
				mux.HandleFunc("/probe", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
				})

				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
				gt.V(t, w.Code).Equal(code)
			})
		}
	})

	t.Run("edge gate forwards the session cookie", func(t *testing.T) {
		var (
			token types.AccessToken
			found bool
		)

		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/probe", func(w http.ResponseWriter, r *http.Request) {
			token, found = credential.From(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: "cookie-value"})
		mux.ServeHTTP(httptest.NewRecorder(), req)

		gt.True(t, found)
		gt.V(t, token.Raw()).Equal("cookie-value")
	})

	t.Run("empty cookie counts as missing", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: ""})
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusFound)
		gt.V(t, w.Header().Get("Location")).Equal("/")
	})
}
