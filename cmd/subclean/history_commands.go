package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"subclean/internal/history"
)

var errHistoryDisabled = errors.New("history is disabled in the configuration")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past cleanup runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				payload := make([]runJSON, 0, len(runs))
				for _, run := range runs {
					payload = append(payload, toRunJSON(run))
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			headers := []string{"Started", "File", "Status", "Encoding", "Sections", "Lines", "Time"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				status := string(run.Status)
				if run.Failed() && run.ErrorKind != "" {
					status += ": " + run.ErrorKind
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					filepath.Base(run.SourcePath),
					status,
					dashIfEmpty(run.Encoding),
					strconv.Itoa(run.SectionsIn) + " → " + strconv.Itoa(run.SectionsOut),
					strconv.Itoa(run.LinesIn) + " → " + strconv.Itoa(run.LinesOut),
					run.Duration().Round(time.Millisecond).String(),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
			return nil
		},
	}
}

func (c *commandContext) requireHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := c.openHistory(cfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errHistoryDisabled
	}
	return store, nil
}
