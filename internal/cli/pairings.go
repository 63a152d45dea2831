package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocutil/combinatorics"
)

func (c *CLI) pairingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairings n",
		Short: "Print every way to wire n inputs to n outputs, one matching per line",
		Example: `  aocutil pairings 3
  # 0->0 1->1 2->2
  # 0->0 1->2 2->1
  # ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("pairings: invalid set size %q", args[0])
			}
			if n < 0 {
				return fmt.Errorf("pairings: %w", combinatorics.ErrNegativeSize)
			}
			if err = c.cfg.checkSetSize(n); err != nil {
				return err
			}

			ctx := cmd.Context()
			t := startTimer(loggerFromContext(ctx))
			blocks := 0
			for block := range combinatorics.Matchings(n) {
				if err = ctx.Err(); err != nil {
					return err
				}
				parts := make([]string, len(block))
				for i, p := range block {
					parts[i] = p.String()
				}
				if err = c.out.WriteLine(strings.Join(parts, " ")); err != nil {
					return err
				}
				blocks++
			}
			t.done("matchings written", "count", blocks)

			if blocks == 0 {
				c.status.printWarning("no matchings for an empty set")
				return nil
			}
			c.status.printSuccess("%d matchings", blocks)
			c.status.printKeyValue("pairs", blocks*n)

			return nil
		},
	}
}
