package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocutil/numeric"
)

// numericCommands returns the small arithmetic subcommands.
func (c *CLI) numericCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "gcd a b [c...]",
			Short: "Greatest common divisor of all arguments",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.foldInts(args, numeric.GCD[int64])
			},
		},
		{
			Use:   "lcm a b [c...]",
			Short: "Least common multiple of all arguments",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.foldInts(args, numeric.LCM[int64])
			},
		},
		{
			Use:   "ceil value boundary",
			Short: "Round value up to the next multiple of boundary",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseInts(args)
				if err != nil {
					return err
				}

				return c.out.WriteLine(strconv.FormatInt(numeric.CeilToBoundary(vals[0], vals[1]), 10))
			},
		},
		{
			Use:   "quadratic a b c",
			Short: "Real roots of a*x^2 + b*x + c",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				var coef [3]float64
				for i, s := range args {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("quadratic: invalid coefficient %q", s)
					}
					coef[i] = v
				}
				lo, hi := numeric.Quadratic(coef[0], coef[1], coef[2])

				return c.out.WriteLine(fmt.Sprintf("%g %g", lo, hi))
			},
		},
		{
			Use:   "bin s...",
			Short: "Decode base-2 strings",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, s := range args {
					v, err := numeric.BinaryStringToInt(s)
					if err != nil {
						return err
					}
					if err = c.out.WriteLine(strconv.FormatInt(v, 10)); err != nil {
						return err
					}
				}

				return nil
			},
		},
		{
			Use:   "hex s",
			Short: "Expand a hex string into its bits, four per digit",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var sb strings.Builder
				for i := 0; i < len(args[0]); i++ {
					v, err := numeric.ParseHexDigit(args[0][i])
					if err != nil {
						return err
					}
					fmt.Fprintf(&sb, "%04b", v)
				}

				return c.out.WriteLine(sb.String())
			},
		},
	}
}

// foldInts reduces args pairwise with fn and prints the result.
func (c *CLI) foldInts(args []string, fn func(a, b int64) int64) error {
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc = fn(acc, v)
	}

	return c.out.WriteLine(strconv.FormatInt(acc, 10))
}

func parseInts(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		out[i] = v
	}

	return out, nil
}
