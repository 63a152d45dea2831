package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocutil/input"
	"github.com/katalvlaran/aocutil/markup"
)

func (c *CLI) markupCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "markup [text...]",
		Short: "Render [colour] tags as ANSI escapes (reads stdin when no text is given)",
		Example: `  aocutil markup "[+green]PASS[-] part 1"
  echo "[red]fail" | aocutil markup --color always`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range markup.Names() {
					if err := c.out.WriteLine(fmt.Sprintf("[%s]%s", name, name)); err != nil {
						return err
					}
				}

				return nil
			}

			lines := []string{strings.Join(args, " ")}
			if len(args) == 0 {
				var err error
				if lines, err = input.ParseLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			for _, line := range lines {
				if err := c.out.WriteLine(line); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every supported tag in its own colour")

	return cmd
}

func (c *CLI) linesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE",
		Short: "Print a puzzle input file as a listing, trailing blank lines removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			lines, err := input.ReadLines(args[0])
			if err != nil {
				return err
			}
			logger.Debug("input loaded", "file", args[0], "lines", len(lines))

			if err = markup.WriteArray(c.out, filepath.Base(args[0]), lines); err != nil {
				return err
			}
			c.status.printKeyValue("lines", len(lines))

			return nil
		},
	}
}
