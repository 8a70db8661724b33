package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

// errChangesFound makes the process exit 1 without printing an error.
var errChangesFound = errors.New("flash plans differ")

func (c *cli) newDiffCmd() *cobra.Command {
	var (
		unified  bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "diff <base> <head>",
		Short: "Compare the flash plans of two scatter files",
		Long: `Compares the partitions two scatter files would flash, for example two
firmware releases. Each source may be a path, - or gh:owner/repo[@ref]:path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := domain.ParseSourceRef(args[0])
			if err != nil {
				return fmt.Errorf("base: %w", err)
			}
			head, err := domain.ParseSourceRef(args[1])
			if err != nil {
				return fmt.Errorf("head: %w", err)
			}

			svc, err := c.service()
			if err != nil {
				return err
			}
			result, err := svc.Diff(cmd.Context(), base, head)
			if err != nil {
				return err
			}

			out := result.PreferredDiff()
			if unified {
				out = result.UnifiedDiff
			}
			if out != "" {
				fmt.Fprintln(c.stdout, out)
				fmt.Fprintln(c.stdout)
			}
			fmt.Fprintln(c.stdout, result.Summary)

			if exitCode && result.Status == domain.StatusChanged {
				return errChangesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unified, "unified", false, "show a unified diff of the rendered commands")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the plans differ")
	return cmd
}
