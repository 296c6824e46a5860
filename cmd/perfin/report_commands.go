package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"perfin/internal/library"
	"perfin/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Analytical reports over the library",
	}

	reportCmd.AddCommand(newReportGapsCommand(ctx))

	return reportCmd
}

func newReportGapsCommand(ctx *commandContext) *cobra.Command {
	var collectionID int64
	var albumID int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Show missing catalog numbers per series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (albumID == 0) == (collectionID == 0) {
				return fmt.Errorf("specify exactly one of --album or --collection")
			}
			return ctx.withStore(func(store *library.Store) error {
				cfg, _ := ctx.ensureConfig()
				rep, err := report.Gaps(cmd.Context(), store, report.Scope{
					CollectionID: collectionID,
					AlbumID:      albumID,
				}, report.Options{MaxGapSpan: cfg.Reports.MaxGapSpan})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, rep)
				}
				renderGapReport(cmd, rep, cfg.Reports.DisplayRangeLimit)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&collectionID, "collection", 0, "Report on a whole collection")
	cmd.Flags().Int64Var(&albumID, "album", 0, "Report on one album")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func renderGapReport(cmd *cobra.Command, rep *report.GapReport, displayLimit int) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if len(rep.Series) == 0 {
		fmt.Fprintln(out, "No owned or wanted stamps to analyze")
		return
	}

	for _, series := range rep.Series {
		title := series.Label()
		if series.CatalogSystem != "" {
			title = fmt.Sprintf("%s / %s", series.CatalogSystem, series.Label())
		}
		for _, line := range renderSectionHeader(title, colorize) {
			fmt.Fprintln(out, line)
		}

		result := series.Result
		fmt.Fprintf(out, "  Owned: %d  Wanted: %d  Complete: %.1f%%\n",
			result.OwnedCount, result.WantedCount, result.CompletionPercentage)

		switch {
		case result.SpanExceeded:
			fmt.Fprintln(out, "  Number range too wide to enumerate gaps")
		case len(result.CompressedRanges) == 0:
			fmt.Fprintln(out, "  No gaps")
		default:
			shown, more := report.TruncateRanges(result.CompressedRanges, displayLimit)
			fmt.Fprintf(out, "  Missing: %s", strings.Join(shown, ", "))
			if more > 0 {
				fmt.Fprintf(out, " (+%d more)", more)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Totals: %d owned, %d wanted, %d missing\n",
		rep.TotalOwned, rep.TotalWanted, rep.TotalMissing)
}
