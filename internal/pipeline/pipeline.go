// Package pipeline wires the stages of a disclosure run together:
// ingest -> normalize -> overrides -> per-chamber index build ->
// attribution. Each stage takes the previous stage's output and returns a
// new value; nothing reaches into another stage's state, and a Result is
// never mutated after Run returns.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/openalaska/disclose/internal/config"
	"github.com/openalaska/disclose/internal/district"
	"github.com/openalaska/disclose/internal/ingest"
	"github.com/openalaska/disclose/internal/model"
	"github.com/openalaska/disclose/internal/normalize"
)

// Result is the immutable outcome of one run. ChamberErrs carries a fatal
// configuration error for a single chamber; the sibling chamber's records
// are still attributed, so one oversized roster never blanks the whole
// report.
type Result struct {
	Canonical   []model.CanonicalRecord
	Chambers    map[model.Chamber][]model.EnrichedRecord
	Rosters     map[model.Chamber]district.Roster
	ChamberErrs map[model.Chamber]error
	Diagnostics *normalize.Diagnostics
}

// Pipeline runs the batch pass. Runs share no state: indices, donor ids
// and diagnostics are all scoped to one Run call.
type Pipeline struct {
	settings config.Settings
}

// New creates a pipeline for the given settings.
func New(settings config.Settings) *Pipeline {
	return &Pipeline{settings: settings}
}

// Run executes one complete pass over the configured export.
func (p *Pipeline) Run() (*Result, error) {
	rosters, err := config.LoadRosters(p.settings.RosterPath)
	if err != nil {
		return nil, err
	}

	overrides, err := config.LoadOverrides(p.settings.OverridesPath)
	if err != nil {
		return nil, err
	}

	raws, err := ingest.ReadFile(p.settings.InputPath)
	if err != nil {
		return nil, err
	}

	canonical, diags := normalize.Normalize(raws, normalize.Options{
		SelfFundingThreshold: p.settings.SelfFundingThreshold,
	})
	if !diags.Empty() {
		slog.Warn("Normalization finished with per-record problems",
			"malformed_amounts", len(diags.MalformedAmounts),
			"malformed_dates", len(diags.MalformedDates))
	}

	normalize.ApplyOverrides(canonical, overrides)

	result := &Result{
		Canonical: canonical,
		Chambers:  make(map[model.Chamber][]model.EnrichedRecord, 2),
		Rosters: map[model.Chamber]district.Roster{
			model.ChamberHouse:  district.Roster(rosters.House),
			model.ChamberSenate: district.Roster(rosters.Senate),
		},
		ChamberErrs: make(map[model.Chamber]error),
		Diagnostics: diags,
	}

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		records := splitChamber(canonical, chamber)
		idx, err := district.BuildIndex(chamber, district.CandidateNames(records), result.Rosters[chamber])
		if err != nil {
			// Fatal for this chamber only; the other still completes.
			result.ChamberErrs[chamber] = fmt.Errorf("%s attribution failed: %w", chamber, err)
			slog.Error("District index build failed", "chamber", chamber, "error", err)
			continue
		}

		enriched := district.Attribute(records, idx)
		result.Chambers[chamber] = enriched
		slog.Info("Attributed chamber records",
			"chamber", chamber,
			"records", len(enriched),
			"candidates", len(idx.Mapping()))
	}

	return result, nil
}

// splitChamber selects the canonical records filed for one chamber's
// office. Filings for other offices (governor, municipal races) pass
// through normalization but are not attributed.
func splitChamber(records []model.CanonicalRecord, chamber model.Chamber) []model.CanonicalRecord {
	var out []model.CanonicalRecord
	for i := range records {
		if records[i].Office == chamber.Office() {
			out = append(out, records[i])
		}
	}
	return out
}
