package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openalaska/disclose/internal/cli"
	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/report"
)

func donorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donors",
		Short: "Rank donors by total giving",
		Long: `Rank donors by their summed contributions across the selected period.

Examples:
  disclose donors -i export.csv --rosters rosters.yaml --top 10
  disclose donors -i export.csv --rosters rosters.yaml --chamber house`,
		RunE: runDonors,
	}

	cmd.Flags().Int("top", 10, "number of donors to show")
	cmd.Flags().String("chamber", "", "limit to one chamber (house or senate)")

	return cmd
}

func runDonors(cmd *cobra.Command, _ []string) error {
	top, _ := cmd.Flags().GetInt("top")
	chamberFlag, _ := cmd.Flags().GetString("chamber")

	result, settings, err := runPipeline()
	if err != nil {
		return err
	}

	var records []model.EnrichedRecord
	switch chamberFlag {
	case "":
		records = allEnriched(result)
	default:
		chamber := model.Chamber(strings.ToLower(chamberFlag))
		if !chamber.Valid() {
			return fmt.Errorf("unknown chamber %q (want house or senate)", chamberFlag)
		}
		if chamberErr, ok := result.ChamberErrs[chamber]; ok {
			return chamberErr
		}
		records = result.Chambers[chamber]
	}

	revenue := report.Revenue(report.FilterPeriod(records, settings.Report, settings.Election))
	totals := report.TopDonors(revenue, top)

	title := "Biggest donors"
	if chamberFlag != "" {
		title = fmt.Sprintf("Biggest %s donors", strings.ToLower(chamberFlag))
	}
	fmt.Println(cli.FormatTitle(title))
	for i, donor := range totals {
		fmt.Printf("%3d. %s  %s\n", i+1, donor.Name, cli.FormatAmount(donor.Total.StringFixed(2)))
	}

	return nil
}
