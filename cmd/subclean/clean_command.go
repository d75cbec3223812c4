package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subclean/internal/config"
	"subclean/internal/workflow"
)

type cleanOptions struct {
	output       string
	overwrite    bool
	stdout       bool
	processors   []string
	regex        string
	patternsFile string
	lineLength   int
	workers      int
	summary      bool
	verbose      bool
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:   "clean FILE...",
		Short: "Clean one or more subtitle files",
		Long: `Clean runs each file through the processor chain and writes the result.

By default the cleaned file is written next to the input with the configured
suffix (movie.srt -> movie_clean.srt). Use --output for a single explicit
destination, --overwrite to replace the inputs, or --stdout to print.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg := *cfg
			if err := applyCleanFlags(cmd, &runCfg, opts); err != nil {
				return err
			}

			logger, err := ctx.newLogger(&runCfg)
			if err != nil {
				return err
			}
			store, err := ctx.openHistory(&runCfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			mgr, err := workflow.NewManager(&runCfg, store, logger)
			if err != nil {
				return err
			}

			req := workflow.Request{
				Files:     args,
				Output:    strings.TrimSpace(opts.output),
				Overwrite: opts.overwrite,
			}
			if opts.stdout {
				req.Stdout = cmd.OutOrStdout()
			}

			summary, err := mgr.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			if opts.summary {
				out := cmd.OutOrStdout()
				if opts.stdout {
					out = cmd.ErrOrStderr()
				}
				writeCleanSummary(out, summary)
			}
			return summary.Err()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Write the cleaned subtitles to this path (single input only)")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "Replace the input files")
	flags.BoolVar(&opts.stdout, "stdout", false, "Print the cleaned subtitles instead of writing files")
	flags.StringSliceVar(&opts.processors, "processors", nil, "Comma-separated processor list (default from config)")
	flags.StringVar(&opts.regex, "regex", "", "Extra blacklist regular expression")
	flags.StringVar(&opts.patternsFile, "patterns-file", "", "YAML file with extra blacklist patterns")
	flags.IntVar(&opts.lineLength, "line-length", 0, "Merge wrapped lines shorter than this many characters")
	flags.IntVar(&opts.workers, "workers", 0, "Number of files cleaned concurrently")
	flags.BoolVar(&opts.summary, "summary", false, "Print a per-file summary table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("output", "overwrite", "stdout")

	return cmd
}

// applyCleanFlags layers explicitly set flags over the loaded config and
// validates the result.
func applyCleanFlags(cmd *cobra.Command, cfg *config.Config, opts cleanOptions) error {
	flags := cmd.Flags()
	if flags.Changed("processors") {
		cfg.Pipeline.Processors = append([]string(nil), opts.processors...)
	} else {
		cfg.Pipeline.Processors = append([]string(nil), cfg.Pipeline.Processors...)
	}
	if flags.Changed("regex") {
		cfg.Pipeline.CustomPattern = opts.regex
	}
	if flags.Changed("patterns-file") {
		path, err := config.ExpandPath(opts.patternsFile)
		if err != nil {
			return fmt.Errorf("--patterns-file: %w", err)
		}
		cfg.Pipeline.PatternsFile = path
	}
	if flags.Changed("line-length") {
		cfg.Pipeline.LineLength = opts.lineLength
	}
	if flags.Changed("workers") {
		cfg.Pipeline.Workers = opts.workers
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg.Validate()
}

func writeCleanSummary(w io.Writer, summary workflow.Summary) {
	headers := []string{"File", "Status", "Encoding", "Sections", "Lines", "Time"}
	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		status := "cleaned"
		if result.Failed() {
			status = "failed: " + result.ErrorKind
		}
		sectionsIn, linesIn := result.Report.Input()
		sectionsOut, linesOut := result.Report.Output()
		rows = append(rows, []string{
			filepath.Base(result.Source),
			status,
			dashIfEmpty(result.Encoding),
			countChange(sectionsIn, sectionsOut, result.Failed()),
			countChange(linesIn, linesOut, result.Failed()),
			result.Duration.Round(time.Millisecond).String(),
		})
	}
	footer := fmt.Sprintf("%d cleaned, %d failed", summary.Cleaned(), summary.Failed())
	fmt.Fprintln(w, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}, withCaption(footer)))
}

func countChange(before, after int, failed bool) string {
	if failed {
		return "-"
	}
	return strconv.Itoa(before) + " → " + strconv.Itoa(after)
}

func dashIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
