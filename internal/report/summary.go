package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/openalaska/disclose/internal/district"
	"github.com/openalaska/disclose/internal/model"
)

// Summarizer writes per-district candidate summaries for one reporting
// period. Records must already be enriched; rosters drive which
// candidates appear under each district, so a candidate with no filings
// still shows up with an explicit "no transactions" line.
type Summarizer struct {
	Records  map[model.Chamber][]model.EnrichedRecord
	Rosters  map[model.Chamber]district.Roster
	Report   string
	Election string

	// ChamberErrs marks chambers whose attribution failed. Their rosters
	// are skipped entirely: a chamber with a rejected roster must not be
	// published as district after district of empty candidates.
	ChamberErrs map[model.Chamber]error

	// Transaction-level thresholds echoed in the summary text.
	LargeDonationMin    decimal.Decimal
	LargeExpenditureMax decimal.Decimal
}

// WriteAll appends summaries for every district of both chambers to the
// file at path, House districts first, creating the file if needed.
func (s *Summarizer) WriteAll(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close summary file", "path", path, "error", closeErr)
		}
	}()

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		if chamberErr, ok := s.ChamberErrs[chamber]; ok {
			slog.Warn("Skipping chamber whose attribution failed",
				"chamber", chamber, "error", chamberErr)
			continue
		}
		roster := s.Rosters[chamber]
		for slot := range roster {
			if err := s.WriteDistrict(f, model.District{Chamber: chamber, Slot: slot}); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteDistrict writes the summary for one district: a header, then one
// block per rostered candidate.
func (s *Summarizer) WriteDistrict(w io.Writer, d model.District) error {
	roster := s.Rosters[d.Chamber]
	if d.Slot < 0 || d.Slot >= len(roster) {
		return fmt.Errorf("no roster slot for %s district %s", d.Chamber, d.Label())
	}

	var title string
	switch d.Chamber {
	case model.ChamberHouse:
		title = fmt.Sprintf("Summary for House District %s:", d.Label())
	case model.ChamberSenate:
		title = fmt.Sprintf("Summary for Senate District %s:", d.Label())
	}

	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprint(w, "==================\n\n")

	period := FilterPeriod(s.Records[d.Chamber], s.Report, s.Election)
	for _, candidate := range roster[d.Slot] {
		s.writeCandidate(w, candidate, ForCandidate(period, candidate))
	}

	return nil
}

func (s *Summarizer) writeCandidate(w io.Writer, candidate string, records []model.EnrichedRecord) {
	fmt.Fprintf(w, "%s\n", candidate)
	fmt.Fprint(w, "----------------\n")

	if len(records) == 0 {
		fmt.Fprintf(w, "There are no transactions recorded for %s.\n\n", candidate)
		return
	}

	s.writeRevenue(w, candidate, Revenue(records))
	fmt.Fprint(w, "\n")
	s.writeInKind(w, candidate, InKind(records))
	s.writeExpenditures(w, candidate, Expenditures(records))
	fmt.Fprint(w, "\n\n")
}

func (s *Summarizer) writeRevenue(w io.Writer, candidate string, revenue []model.EnrichedRecord) {
	stats := ComputeStats(revenue)
	if stats.Count == 0 {
		fmt.Fprintf(w, "%s's campaign did not record any donations.\n", candidate)
		return
	}

	fmt.Fprintf(w, "%s's campaign received %d donations.\n", candidate, stats.Count)
	fmt.Fprintf(w, "Donations to %s's campaign totaled $%s.\n", candidate, stats.Total.StringFixed(2))
	fmt.Fprintf(w, "The average contribution to %s's campaign was $%s.\n", candidate, stats.Mean.Round(2).String())
	fmt.Fprintf(w, "The median contribution to %s's campaign was $%s.\n", candidate, stats.Median.String())
	fmt.Fprintf(w, "The minimum contribution to %s's campaign was $%s.\n", candidate, stats.Min.String())
	fmt.Fprintf(w, "The maximum contribution to %s's campaign was $%s.\n", candidate, stats.Max.String())

	var large []model.EnrichedRecord
	for i := range revenue {
		if revenue[i].Amount.Valid && revenue[i].Amount.Decimal.GreaterThanOrEqual(s.LargeDonationMin) {
			large = append(large, revenue[i])
		}
	}
	largeStats := ComputeStats(large)
	fmt.Fprintf(w, "%d donations of at least $%s were made to the campaign.\n",
		largeStats.Count, s.LargeDonationMin.String())
	fmt.Fprintf(w, "Donations of more than $%s totaled $%s in the reporting period.\n",
		s.LargeDonationMin.String(), largeStats.Total.StringFixed(2))

	if stats.Missing > 0 {
		fmt.Fprintf(w, "%d donations had unreadable amounts and are excluded above.\n", stats.Missing)
	}
}

func (s *Summarizer) writeInKind(w io.Writer, candidate string, inKind []model.EnrichedRecord) {
	stats := ComputeStats(inKind)
	if stats.Count == 0 {
		fmt.Fprintf(w, "%s's campaign received no in-kind contributions.\n\n", candidate)
		return
	}

	fmt.Fprintf(w, "%s's campaign received %d in-kind contributions.\n", candidate, stats.Count)
	fmt.Fprintf(w, "In-kind contributions to %s's campaign totaled $%s.\n", candidate, stats.Total.StringFixed(2))
	fmt.Fprintf(w, "The average in-kind contribution to %s's campaign had a value of $%s.\n",
		candidate, stats.Mean.Round(2).String())
	fmt.Fprint(w, "\n")
}

func (s *Summarizer) writeExpenditures(w io.Writer, candidate string, expenses []model.EnrichedRecord) {
	stats := ComputeStats(expenses)
	if stats.Count == 0 {
		fmt.Fprintf(w, "%s's campaign made no expenditures in the reporting period.\n", candidate)
		return
	}

	fmt.Fprintf(w, "%s's campaign made %d expenditures in the reporting period.\n", candidate, stats.Count)
	fmt.Fprintf(w, "%s's campaign spent $%s in the reporting period.\n", candidate, stats.Total.StringFixed(2))
	fmt.Fprintf(w, "The average expense for %s's campaign was $%s.\n", candidate, stats.Mean.Round(2).String())
	fmt.Fprintf(w, "The median expense for %s's campaign was $%s.\n", candidate, stats.Median.String())

	// Amounts are negative, so the smallest expense is the maximum.
	fmt.Fprintf(w, "The smallest expense for %s's campaign was $%s.\n", candidate, stats.Max.String())
	fmt.Fprintf(w, "The biggest expense for %s's campaign was $%s.\n", candidate, stats.Min.String())

	var large []model.EnrichedRecord
	for i := range expenses {
		if expenses[i].Amount.Valid && expenses[i].Amount.Decimal.LessThanOrEqual(s.LargeExpenditureMax) {
			large = append(large, expenses[i])
		}
	}
	largeStats := ComputeStats(large)
	fmt.Fprintf(w, "%d expenses of at least $%s were made by the campaign.\n",
		largeStats.Count, s.LargeExpenditureMax.Neg().String())
	fmt.Fprintf(w, "Expenses exceeding $%s totaled $%s in the reporting period.\n",
		s.LargeExpenditureMax.Neg().String(), largeStats.Total.StringFixed(2))
}
