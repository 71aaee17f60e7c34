package usecase

import (
	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/infra"
)

// UseCase implements the dashboard flows on top of the Chronocode API: the
// session gate, repository listing and search, analysis and the timeline.
type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
