package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func loginCommand() *cli.Command {
	var api config.API

	return &cli.Command{
		Name:  "login",
		Usage: "Show the GitHub login page of the backend",
		Flags: api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			if err := uc.NewSession().Login(ctx); err != nil {
				return err
			}

			_, err = fmt.Fprintf(output(c),
				"After signing in, export the %s cookie value as CHRONOCODE_ACCESS_TOKEN.\n",
				types.AccessTokenCookie)
			return err
		},
	}
}

func logoutCommand() *cli.Command {
	var api config.API

	return &cli.Command{
		Name:  "logout",
		Usage: "End the backend session",
		Flags: api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			if err := uc.NewSession().Logout(ctx); err != nil {
				return err
			}
			return newRenderer(c).Status("Signed out. Unset CHRONOCODE_ACCESS_TOKEN to forget the credential.")
		},
	}
}

func whoamiCommand() *cli.Command {
	var api config.API

	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed in GitHub user",
		Flags: api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			session := uc.NewSession()
			if session.Check(ctx) != model.SessionAuthenticated {
				return goerr.Wrap(types.ErrUnauthenticated, "not signed in, run `chronocode login`")
			}

			return newRenderer(c).Profile(session.User())
		},
	}
}
