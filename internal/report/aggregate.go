package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/openalaska/disclose/internal/model"
)

// Stats summarizes the valid amounts in a record set. Records whose
// amount failed to parse are counted in Missing and excluded from every
// other field, never treated as zero.
type Stats struct {
	Total   decimal.Decimal
	Mean    decimal.Decimal
	Median  decimal.Decimal
	Min     decimal.Decimal
	Max     decimal.Decimal
	Count   int
	Missing int
}

// ComputeStats computes count, total, mean, median, min and max over the
// valid amounts in records.
func ComputeStats(records []model.EnrichedRecord) Stats {
	var stats Stats
	var amounts []decimal.Decimal
	for i := range records {
		if !records[i].Amount.Valid {
			stats.Missing++
			continue
		}
		amounts = append(amounts, records[i].Amount.Decimal)
	}

	stats.Count = len(amounts)
	if stats.Count == 0 {
		return stats
	}

	sort.Slice(amounts, func(i, j int) bool { return amounts[i].LessThan(amounts[j]) })

	stats.Min = amounts[0]
	stats.Max = amounts[len(amounts)-1]
	for _, a := range amounts {
		stats.Total = stats.Total.Add(a)
	}
	stats.Mean = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))

	mid := len(amounts) / 2
	if len(amounts)%2 == 1 {
		stats.Median = amounts[mid]
	} else {
		stats.Median = amounts[mid-1].Add(amounts[mid]).Div(decimal.NewFromInt(2))
	}

	return stats
}

// SumByDonor groups records by donor name and sums their valid amounts.
// This single grouping serves both top-donor rankings and the
// large-donation/large-expenditure extracts.
func SumByDonor(records []model.EnrichedRecord) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for i := range records {
		if !records[i].Amount.Valid {
			continue
		}
		name := records[i].DonorFullName
		sums[name] = sums[name].Add(records[i].Amount.Decimal)
	}
	return sums
}

// DonorTotal is one donor's summed amount.
type DonorTotal struct {
	Name  string
	Total decimal.Decimal
}

// TopDonors ranks donors by summed amount, largest first, ties broken by
// name so the ranking is deterministic.
func TopDonors(records []model.EnrichedRecord, n int) []DonorTotal {
	sums := SumByDonor(records)
	totals := make([]DonorTotal, 0, len(sums))
	for name, total := range sums {
		totals = append(totals, DonorTotal{Name: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Name < totals[j].Name
	})
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// donorsAtLeast returns the donors whose summed amounts reach min.
func donorsAtLeast(records []model.EnrichedRecord, min decimal.Decimal) map[string]struct{} {
	out := make(map[string]struct{})
	for name, total := range SumByDonor(records) {
		if total.GreaterThanOrEqual(min) {
			out[name] = struct{}{}
		}
	}
	return out
}

// payeesAtMost returns the payees whose summed amounts are at or below
// max. Expenditures are negative, so max is a negative bound.
func payeesAtMost(records []model.EnrichedRecord, max decimal.Decimal) map[string]struct{} {
	out := make(map[string]struct{})
	for name, total := range SumByDonor(records) {
		if total.LessThanOrEqual(max) {
			out[name] = struct{}{}
		}
	}
	return out
}
