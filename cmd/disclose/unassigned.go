package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openalaska/disclose/internal/cli"
	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/report"
)

func unassignedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassigned",
		Short: "List filings that matched no roster district",
		Long: `List every record whose candidate name matched no roster slot and was
attributed to the sentinel district. These are usually roster spelling
mismatches against the name the candidate actually files under.`,
		RunE: runUnassigned,
	}
}

func runUnassigned(_ *cobra.Command, _ []string) error {
	result, _, err := runPipeline()
	if err != nil {
		return err
	}

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		unassigned := report.Unassigned(result.Chambers[chamber])
		fmt.Println(cli.FormatTitle(fmt.Sprintf("Unassigned %s filings: %d", chamber, len(unassigned))))

		seen := make(map[string]int)
		for i := range unassigned {
			seen[unassigned[i].CandidateName]++
		}
		for name, count := range seen {
			fmt.Printf("  %s (%d records)\n", name, count)
		}
		if len(unassigned) == 0 {
			fmt.Println(cli.FormatSubtle("  every filing matched a roster district"))
		}
		fmt.Println()
	}

	return nil
}
