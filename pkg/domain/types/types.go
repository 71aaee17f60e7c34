package types

import (
	"log/slog"

	"github.com/google/uuid"
)

const (
	// AccessTokenCookie is the cookie carrying the session credential issued by the backend.
	AccessTokenCookie = "access_token"

	// UnknownDay is the day key for subcommits without a usable timestamp.
	UnknownDay = "unknown"
)

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

type AccessToken string

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}

// Raw returns the unmasked token. Use it only when attaching the credential to a request.
func (x AccessToken) Raw() string {
	return string(x)
}
