package chronocode

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra"
	"github.com/m-mizutani/chronocode/pkg/utils/credential"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/chronocode/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultBaseURL = "http://localhost:8080"

// Client talks to the Chronocode backend. It never retries; callers own
// retry and backoff decisions.
type Client struct {
	baseURL     string
	httpClient  infra.HTTPClient
	accessToken types.AccessToken
}

var _ interfaces.API = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithAccessToken(token types.AccessToken) Option {
	return func(x *Client) {
		x.accessToken = token
	}
}

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse API base URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "API base URL must be http or https", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// WithAccessToken returns a copy of the client sending token as the session
// credential. The receiver is left untouched.
func (x *Client) WithAccessToken(token types.AccessToken) *Client {
	c := *x
	c.accessToken = token
	return &c
}

func (x *Client) BaseURL() string {
	return x.baseURL
}

func (x *Client) request(ctx context.Context, method, endpoint string, body any, params url.Values, out any) error {
	u := x.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("endpoint", endpoint))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", u))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	token := x.accessToken
	if ctxToken, ok := credential.From(ctx); ok {
		token = ctxToken
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: token.Raw()})
	}

	logging.From(ctx).Debug("sending API request",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
		)
	}
	defer safe.Close(ctx, resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read response body", goerr.V("endpoint", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return goerr.Wrap(err, "failed to decode response body",
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
		)
	}

	return nil
}

// errorMessage picks the message of an error body. Any valid JSON without a
// string "error" field is "Request failed"; only an undecodable body is
// "Unknown error".
func errorMessage(body []byte) string {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return unknownErrorMessage
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return requestFailedMessage
	}
	if msg, ok := obj["error"].(string); ok && msg != "" {
		return msg
	}
	return requestFailedMessage
}

// LoginURL is the browser redirect target starting the GitHub OAuth flow. It
// is never fetched by the client.
func (x *Client) LoginURL() string {
	return x.baseURL + "/auth/github/login"
}

func (x *Client) AuthStatus(ctx context.Context) (*model.AuthStatus, error) {
	var resp model.AuthStatus
	if err := x.request(ctx, http.MethodGet, "/auth/status", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (x *Client) Logout(ctx context.Context) error {
	return x.request(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (x *Client) GetProfile(ctx context.Context) (*model.GitHubProfile, error) {
	var resp model.GitHubProfile
	if err := x.request(ctx, http.MethodGet, "/user/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (x *Client) GetRepositories(ctx context.Context) (*model.UserRepositoriesResponse, error) {
	var resp model.UserRepositoriesResponse
	if err := x.request(ctx, http.MethodGet, "/repositories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (x *Client) SearchRepos(ctx context.Context, query string) (*model.RepositoriesResponse, error) {
	var resp model.RepositoriesResponse
	params := url.Values{"q": {query}}
	if err := x.request(ctx, http.MethodGet, "/user/repos/search", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (x *Client) AnalyzeRepository(ctx context.Context, repoURL string) (*model.AnalyzeResponse, error) {
	var resp model.AnalyzeResponse
	req := &model.AnalyzeRequest{RepoURL: repoURL}
	if err := x.request(ctx, http.MethodPost, "/analyze", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (x *Client) GetSubcommitsTimeline(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
	var resp model.TimelineResponse
	params := url.Values{"repo_id": {repoID.String()}}
	if err := x.request(ctx, http.MethodGet, "/subcommits-timeline", nil, params, &resp); err != nil {
		return nil, err
	}

	for _, sc := range resp.Subcommits {
		if sc == nil || sc.Type.Valid() {
			continue
		}
		logging.From(ctx).Warn("unknown subcommit type, treating as CHORE",
			slog.Int64("id", sc.ID),
			slog.String("type", string(sc.Type)),
		)
		sc.Type = sc.Type.Normalize()
	}

	return &resp, nil
}
