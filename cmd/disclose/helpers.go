package main

import (
	"fmt"
	"log/slog"

	"github.com/openalaska/disclose/internal/common"
	"github.com/openalaska/disclose/internal/config"
	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/pipeline"
)

// runPipeline loads settings, validates the required inputs, and executes
// one full pass. Per-chamber attribution failures are logged here once so
// individual commands only deal with the chambers that completed.
func runPipeline() (*pipeline.Result, config.Settings, error) {
	settings := config.Load()

	if settings.InputPath == "" {
		return nil, settings, common.NewUserError("no disclosure export given; pass --input or set input in the config file", common.ErrMissingConfig)
	}
	if settings.RosterPath == "" {
		return nil, settings, common.NewUserError("no roster file given; pass --rosters or set rosters in the config file", common.ErrMissingConfig)
	}

	result, err := pipeline.New(settings).Run()
	if err != nil {
		return nil, settings, err
	}

	for chamber, chamberErr := range result.ChamberErrs {
		slog.Warn("Chamber skipped", "chamber", chamber, "error", chamberErr)
	}
	if len(result.ChamberErrs) == 2 {
		return nil, settings, fmt.Errorf("both chambers failed attribution: %v / %v",
			result.ChamberErrs[model.ChamberHouse], result.ChamberErrs[model.ChamberSenate])
	}

	return result, settings, nil
}

// allEnriched merges both chambers' records, House first.
func allEnriched(result *pipeline.Result) []model.EnrichedRecord {
	merged := make([]model.EnrichedRecord, 0,
		len(result.Chambers[model.ChamberHouse])+len(result.Chambers[model.ChamberSenate]))
	merged = append(merged, result.Chambers[model.ChamberHouse]...)
	merged = append(merged, result.Chambers[model.ChamberSenate]...)
	return merged
}
