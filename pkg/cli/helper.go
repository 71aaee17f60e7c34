package cli

import (
	"io"
	"os"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/cli/render"
	"github.com/m-mizutani/chronocode/pkg/infra"
	"github.com/m-mizutani/chronocode/pkg/infra/navigator"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func newRenderer(c *cli.Command) *render.Renderer {
	return render.New(output(c))
}

// newUseCase wires the backend client and a navigator that prints
// destinations to the command output.
func newUseCase(c *cli.Command, api *config.API) (*usecase.UseCase, error) {
	client, err := api.NewClient()
	if err != nil {
		return nil, err
	}

	nav, err := navigator.New(output(c), client.BaseURL())
	if err != nil {
		return nil, err
	}

	return usecase.New(infra.New(
		infra.WithAPI(client),
		infra.WithNavigator(nav),
	)), nil
}
