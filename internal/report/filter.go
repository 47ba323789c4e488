// Package report is the downstream consumer of enriched records: period
// and category filters, donor-level grouping, district summary text, and
// large-transaction CSV extracts.
package report

import (
	"strings"

	"github.com/openalaska/disclose/internal/model"
)

// FilterPeriod selects records for one disclosure period. Report and
// election match by substring because the export embeds qualifiers in
// both columns ("Thirty Day Report", "State General"); an empty filter
// matches everything on that axis.
func FilterPeriod(records []model.EnrichedRecord, report, election string) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if strings.Contains(records[i].ReportType, report) &&
			strings.Contains(records[i].ElectionType, election) {
			out = append(out, records[i])
		}
	}
	return out
}

// Revenue selects monetary contributions: income that is not in-kind.
func Revenue(records []model.EnrichedRecord) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].IsIncome() && !records[i].IsInKind() {
			out = append(out, records[i])
		}
	}
	return out
}

// InKind selects non-monetary contributions.
func InKind(records []model.EnrichedRecord) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].IsInKind() {
			out = append(out, records[i])
		}
	}
	return out
}

// Expenditures selects campaign spending.
func Expenditures(records []model.EnrichedRecord) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].IsExpenditure() {
			out = append(out, records[i])
		}
	}
	return out
}

// ForCandidate selects one candidate's records by exact name.
func ForCandidate(records []model.EnrichedRecord, name string) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].CandidateName == name {
			out = append(out, records[i])
		}
	}
	return out
}

// ForDistrict selects the records attributed to one district.
func ForDistrict(records []model.EnrichedRecord, d model.District) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].District == d {
			out = append(out, records[i])
		}
	}
	return out
}

// Unassigned selects records whose candidate matched no roster slot.
// Analysts routinely need this list to reconcile roster spelling against
// the names candidates actually file under.
func Unassigned(records []model.EnrichedRecord) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for i := range records {
		if records[i].District.Unassigned() {
			out = append(out, records[i])
		}
	}
	return out
}
