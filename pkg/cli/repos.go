package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func reposCommand() *cli.Command {
	var api config.API

	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"ls"},
		Usage:   "List repositories analysed for the signed in user",
		Flags:   api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			repos, err := uc.NewRepositoriesLoader().Load(ctx)
			if err != nil {
				return err
			}
			return newRenderer(c).Repositories(repos)
		},
	}
}

func searchCommand() *cli.Command {
	var api config.API

	return &cli.Command{
		Name:      "search",
		Usage:     "Search analysed repositories by name",
		ArgsUsage: "<query>",
		Flags:     api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")

			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			search := uc.NewRepoSearch()
			defer search.Close()

			result := search.Search(ctx, query)
			if result.Error != nil {
				return result.Error
			}

			r := newRenderer(c)
			if len([]rune(strings.TrimSpace(query))) < usecase.MinSearchQueryLength {
				return r.Status("Type at least 2 characters to search.")
			}
			return r.SearchResults(result.Query, result.Repositories)
		},
	}
}
