package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/report"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <donations|expenses>",
		Short: "Write large-transaction CSV extracts",
		Long: `Write CSV extracts of large transactions, appending to the output file
with a single header. "donations" selects contributions from donors whose
summed giving to a candidate reached the large-donation threshold;
"expenses" selects payments to entities paid at least the
large-expenditure threshold in total.

Examples:
  disclose extract donations -i export.csv --rosters rosters.yaml -o big_contributions.csv
  disclose extract expenses -i export.csv --rosters rosters.yaml -o big_expenses.csv`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"donations", "expenses"},
		RunE:      runExtract,
	}

	cmd.Flags().StringP("output", "o", "", "CSV file to append to (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	result, settings, err := runPipeline()
	if err != nil {
		return err
	}

	// House rows first, then Senate, matching how the published extracts
	// have always been ordered.
	var rows []model.EnrichedRecord
	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		records := result.Chambers[chamber]
		switch args[0] {
		case "donations":
			rows = append(rows, report.LargeDonationRows(records, settings.Report, settings.Election, settings.LargeDonationMin)...)
		case "expenses":
			rows = append(rows, report.LargeExpenditureRows(records, settings.Report, settings.Election, settings.LargeExpenditureMax)...)
		default:
			return fmt.Errorf("unknown extract %q (want donations or expenses)", args[0])
		}
	}

	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open extract file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close extract file", "path", output, "error", closeErr)
		}
	}()

	// Header only when starting a fresh file; appended periods reuse it.
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat extract file: %w", err)
	}

	if err := report.WriteCSV(f, rows, info.Size() == 0); err != nil {
		return err
	}

	slog.Info("Wrote extract", "kind", args[0], "rows", len(rows), "output", output)
	return nil
}
