package infra

import (
	"net/http"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
)

// Clients bundles the outbound dependencies of the use cases: the Chronocode
// API and the navigator that opens pages for the user.
type Clients struct {
	api       interfaces.API
	navigator interfaces.Navigator
}

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Clients) API() interfaces.API {
	return x.api
}
func (x *Clients) Navigator() interfaces.Navigator {
	return x.navigator
}

func WithAPI(client interfaces.API) Option {
	return func(x *Clients) {
		x.api = client
	}
}

func WithNavigator(nav interfaces.Navigator) Option {
	return func(x *Clients) {
		x.navigator = nav
	}
}
