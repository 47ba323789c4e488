package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write candidate summaries for every district",
		Long: `Write per-candidate financial summaries for every House and Senate
district to a text file, appending so several periods can share one file.

Examples:
  disclose report -i CD_Transactions.csv --rosters rosters.yaml \
    --report "Seven Day" --election "State General" -o summaries.txt`,
		RunE: runReport,
	}

	cmd.Flags().StringP("output", "o", "summaries.txt", "summary file to append to")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")

	result, settings, err := runPipeline()
	if err != nil {
		return err
	}

	summarizer := &report.Summarizer{
		Records:             result.Chambers,
		Rosters:             result.Rosters,
		ChamberErrs:         result.ChamberErrs,
		Report:              settings.Report,
		Election:            settings.Election,
		LargeDonationMin:    settings.LargeDonationMin,
		LargeExpenditureMax: settings.LargeExpenditureMax,
	}

	if err := summarizer.WriteAll(output); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}

	slog.Info("Wrote district summaries",
		"output", output,
		"house_districts", len(result.Rosters[model.ChamberHouse]),
		"senate_districts", len(result.Rosters[model.ChamberSenate]))

	if unassigned := report.Unassigned(allEnriched(result)); len(unassigned) > 0 {
		slog.Warn("Some filings could not be attributed to a district; run `disclose unassigned` for the list",
			"records", len(unassigned))
	}

	return nil
}
