package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra/chronocode"
	"github.com/m-mizutani/chronocode/pkg/utils/errutil"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON, not raw user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

// writeError maps err to a status code. Backend errors keep their status and
// message; only unexpected failures are reported.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if apiErr, ok := chronocode.AsAPIError(err); ok {
		if apiErr.Status >= http.StatusInternalServerError {
			errutil.HandleError(r.Context(), msg, err)
		}
		writeJSON(w, apiErr.Status, model.ErrorResponse{Error: apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, types.ErrNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Not found"})
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	default:
		errutil.HandleError(r.Context(), msg, err)
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: "Request failed"})
	}
}

type config struct {
	secureCookie bool
}

type Option func(*config)

// WithSecureCookie marks the cleared session cookie as Secure.
func WithSecureCookie(secure bool) Option {
	return func(cfg *config) {
		cfg.secureCookie = secure
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(edgeGate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"loginUrl": uc.LoginURL()})
	})

	r.Route("/home", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			repos, err := uc.Repositories(r.Context())
			if err != nil {
				writeError(w, r, "fail to get repositories", err)
				return
			}
			writeJSON(w, http.StatusOK, model.UserRepositoriesResponse{Repositories: nonNil(repos)})
		})

		r.Get("/search", func(w http.ResponseWriter, r *http.Request) {
			repos, err := uc.SearchRepositories(r.Context(), r.URL.Query().Get("q"))
			if err != nil {
				writeError(w, r, "fail to search repositories", err)
				return
			}
			writeJSON(w, http.StatusOK, model.RepositoriesResponse{Repositories: nonNil(repos)})
		})

		r.Post("/analyze", func(w http.ResponseWriter, r *http.Request) {
			var req model.AnalyzeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, r, "fail to decode analyze request",
					goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error())))
				return
			}

			resp, err := uc.AnalyzeRepository(r.Context(), req.RepoURL)
			if err != nil {
				writeError(w, r, "fail to analyze repository", err)
				return
			}
			writeJSON(w, http.StatusOK, resp)
		})
	})

	r.Route("/timeline/{repoID}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			repoID := types.RepoID(chi.URLParam(r, "repoID"))

			filter, epics, err := parseTimelineQuery(r)
			if err != nil {
				writeError(w, r, "invalid timeline query", err)
				return
			}

			page, err := uc.Timeline(r.Context(), repoID, filter, epics)
			if err != nil {
				writeError(w, r, "fail to get timeline", err)
				return
			}
			writeJSON(w, http.StatusOK, page)
		})

		r.Get("/subcommits/{id}", func(w http.ResponseWriter, r *http.Request) {
			repoID := types.RepoID(chi.URLParam(r, "repoID"))
			id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				writeError(w, r, "invalid subcommit id",
					goerr.Wrap(types.ErrValidationFailed, "subcommit id must be an integer"))
				return
			}

			detail, err := uc.SubcommitDetail(r.Context(), repoID, id)
			if err != nil {
				writeError(w, r, "fail to get subcommit detail", err)
				return
			}
			if detail.Siblings == nil {
				detail.Siblings = []*model.Subcommit{}
			}
			writeJSON(w, http.StatusOK, detail)
		})
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		// The cookie is cleared regardless of whether the backend call succeeds.
		go uc.Logout(DetachContext(r.Context()))

		http.SetCookie(w, &http.Cookie{
			Name:     types.AccessTokenCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func parseTimelineQuery(r *http.Request) (model.TimelineFilter, bool, error) {
	q := r.URL.Query()
	filter := model.TimelineFilter{Query: q.Get("q")}

	if v := q.Get("types"); v != "" {
		set, err := types.ParseSubcommitTypes(v)
		if err != nil {
			return filter, false, err
		}
		filter.Types = set
	}

	var epics bool
	if v := q.Get("epics"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, false, goerr.Wrap(types.ErrValidationFailed, "epics must be a boolean", goerr.V("epics", v))
		}
		epics = b
	}

	return filter, epics, nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
