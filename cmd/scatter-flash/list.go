package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls gh:owner/repo[@ref]",
		Short: "List the scatter files in a GitHub repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := domain.ParseRepoRef(args[0])
			if err != nil {
				return err
			}

			svc, err := c.service()
			if err != nil {
				return err
			}
			files, err := svc.ListScatterFiles(cmd.Context(), repo.Owner, repo.Repo, repo.Ref)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				c.logger.Warn("no scatter files found", "repo", repo.String())
			}

			for _, f := range files {
				ref := repo
				ref.Path = f
				fmt.Fprintln(c.stdout, ref.String())
			}
			return nil
		},
	}
}
