package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subclean/internal/processors"
)

func newProcessorsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "processors",
		Short: "List the available processors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			position := make(map[string]int, len(cfg.Pipeline.Processors))
			for i, name := range cfg.Pipeline.Processors {
				position[name] = i + 1
			}

			headers := []string{"#", "Name", "Aliases", "Enabled", "Description"}
			var rows [][]string
			for _, info := range processors.Catalog() {
				order := "-"
				if pos, ok := position[info.Name]; ok {
					order = strconv.Itoa(pos)
				}
				rows = append(rows, []string{
					order,
					info.Name,
					dashIfEmpty(strings.Join(info.Aliases, ", ")),
					yesNo(position[info.Name] > 0),
					info.Description,
				})
			}

			out := cmd.OutOrStdout()
			caption := "default order: " + strings.Join(processors.DefaultNames(), " → ")
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight}, withCaption(caption)))
			return nil
		},
	}
}
