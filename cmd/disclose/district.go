package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openalaska/disclose/internal/cli"
	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/report"
)

func districtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "district <house|senate> <number|letter>",
		Short: "Print one district's candidate summaries to the terminal",
		Long: `Print financial summaries for every candidate in a single district.

Examples:
  disclose district house 12 -i export.csv --rosters rosters.yaml
  disclose district senate B -i export.csv --rosters rosters.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: runDistrict,
	}
}

func runDistrict(_ *cobra.Command, args []string) error {
	chamber := model.Chamber(strings.ToLower(args[0]))
	if !chamber.Valid() {
		return fmt.Errorf("unknown chamber %q (want house or senate)", args[0])
	}

	result, settings, err := runPipeline()
	if err != nil {
		return err
	}
	if chamberErr, ok := result.ChamberErrs[chamber]; ok {
		return chamberErr
	}

	roster := result.Rosters[chamber]
	slot, err := parseDistrictArg(chamber, args[1], len(roster))
	if err != nil {
		return err
	}

	d := model.District{Chamber: chamber, Slot: slot}
	title := fmt.Sprintf("Summary for House District %s", d.Label())
	if chamber == model.ChamberSenate {
		title = fmt.Sprintf("Summary for Senate District %s", d.Label())
	}
	fmt.Println(cli.FormatTitle(title))

	period := report.FilterPeriod(result.Chambers[chamber], settings.Report, settings.Election)
	for _, candidate := range roster[slot] {
		printCandidate(candidate, report.ForCandidate(period, candidate))
	}

	return nil
}

func printCandidate(candidate string, records []model.EnrichedRecord) {
	fmt.Println(cli.FormatCandidate(candidate))

	if len(records) == 0 {
		fmt.Println(cli.FormatSubtle(fmt.Sprintf("There are no transactions recorded for %s.", candidate)))
		fmt.Println()
		return
	}

	revenue := report.Revenue(records)
	stats := report.ComputeStats(revenue)
	if stats.Count == 0 {
		fmt.Printf("%s's campaign did not record any donations.\n", candidate)
	} else {
		fmt.Printf("%s's campaign received %d contributions totaling %s.\n",
			candidate, stats.Count, cli.FormatAmount(stats.Total.StringFixed(2)))
		fmt.Printf("Average %s, median %s, minimum %s, maximum %s.\n",
			cli.FormatAmount(stats.Mean.Round(2).String()),
			cli.FormatAmount(stats.Median.String()),
			cli.FormatAmount(stats.Min.String()),
			cli.FormatAmount(stats.Max.String()))

		self := 0
		for i := range revenue {
			if revenue[i].IsSelf {
				self++
			}
		}
		if self > 0 {
			fmt.Println(cli.SelfFundedStyle.Render(
				fmt.Sprintf("%d contributions look self-funded.", self)))
		}
	}

	inKind := report.ComputeStats(report.InKind(records))
	if inKind.Count > 0 {
		fmt.Printf("%d in-kind contributions totaling %s.\n",
			inKind.Count, cli.FormatAmount(inKind.Total.StringFixed(2)))
	}

	expenses := report.ComputeStats(report.Expenditures(records))
	if expenses.Count > 0 {
		fmt.Printf("%d expenditures totaling %s.\n",
			expenses.Count, cli.FormatAmount(expenses.Total.StringFixed(2)))
	}

	if missing := stats.Missing + inKind.Missing + expenses.Missing; missing > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d records had unreadable amounts and are excluded.", missing)))
	}
	fmt.Println()
}

// parseDistrictArg converts a user-supplied district name ("12" or "B")
// into a 0-based roster slot.
func parseDistrictArg(chamber model.Chamber, arg string, slots int) (int, error) {
	switch chamber {
	case model.ChamberHouse:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > slots {
			return 0, fmt.Errorf("house district must be a number between 1 and %d, got %q", slots, arg)
		}
		return n - 1, nil
	case model.ChamberSenate:
		if slots == 0 {
			return 0, fmt.Errorf("the roster defines no senate districts")
		}
		letter := strings.ToUpper(arg)
		slot := strings.Index(model.SenateAlphabet, letter)
		if len(letter) != 1 || slot < 0 || slot >= slots {
			return 0, fmt.Errorf("senate district must be a letter A-%c, got %q",
				model.SenateAlphabet[slots-1], arg)
		}
		return slot, nil
	default:
		return 0, fmt.Errorf("unknown chamber %q", chamber)
	}
}
