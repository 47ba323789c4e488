package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openalaska/disclose/internal/model"
)

// extractColumns is the column order for the large-transaction extracts.
var extractColumns = []string{
	"district",
	"candidate_name",
	"amount",
	"date",
	"donor_full_name",
	"is_self",
	"address",
	"city",
	"state",
	"zip",
	"country",
	"employer",
	"occupation",
	"payment_type",
	"payment_detail",
	"purpose_of_expenditure",
	"submitted",
}

// LargeDonationRows returns every monetary contribution from donors whose
// summed giving to that candidate reached min in the period. The donor
// aggregate is per candidate, so a donor giving $300 to each of two
// campaigns appears in neither extract. Rows come back sorted by
// district, candidate, then amount descending.
func LargeDonationRows(records []model.EnrichedRecord, report, election string, min decimal.Decimal) []model.EnrichedRecord {
	revenue := Revenue(FilterPeriod(records, report, election))

	var rows []model.EnrichedRecord
	for _, candidate := range candidateOrder(revenue) {
		mine := ForCandidate(revenue, candidate)
		keep := donorsAtLeast(mine, min)
		for i := range mine {
			if _, ok := keep[mine[i].DonorFullName]; ok {
				rows = append(rows, mine[i])
			}
		}
	}

	sortExtract(rows, false)
	return rows
}

// LargeExpenditureRows returns every expenditure to payees whose summed
// payments from that candidate's campaign were at or below max (amounts
// are negative). Rows come back sorted by district, candidate, then
// amount ascending, so the biggest payments lead.
func LargeExpenditureRows(records []model.EnrichedRecord, report, election string, max decimal.Decimal) []model.EnrichedRecord {
	expenses := Expenditures(FilterPeriod(records, report, election))

	var rows []model.EnrichedRecord
	for _, candidate := range candidateOrder(expenses) {
		mine := ForCandidate(expenses, candidate)
		keep := payeesAtMost(mine, max)
		for i := range mine {
			if _, ok := keep[mine[i].DonorFullName]; ok {
				rows = append(rows, mine[i])
			}
		}
	}

	sortExtract(rows, true)
	return rows
}

// WriteCSV writes extract rows, optionally preceded by the header. The
// caller controls the header so that House and Senate rows can share one
// appended file with a single header line.
func WriteCSV(w io.Writer, rows []model.EnrichedRecord, includeHeader bool) error {
	cw := csv.NewWriter(w)

	if includeHeader {
		if err := cw.Write(extractColumns); err != nil {
			return fmt.Errorf("failed to write extract header: %w", err)
		}
	}

	for i := range rows {
		r := &rows[i]
		amount := ""
		if r.Amount.Valid {
			amount = r.Amount.Decimal.String()
		}
		row := []string{
			r.District.Label(),
			r.CandidateName,
			amount,
			formatDate(r.Date),
			r.DonorFullName,
			fmt.Sprintf("%t", r.IsSelf),
			r.Address,
			r.City,
			r.State,
			r.Zip,
			r.Country,
			r.Employer,
			r.Occupation,
			r.PaymentType,
			r.PaymentDetail,
			r.PurposeOfExpenditure,
			formatDate(r.Submitted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write extract row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("01/02/2006")
}

// candidateOrder lists distinct candidate names by first appearance.
func candidateOrder(records []model.EnrichedRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range records {
		if _, ok := seen[records[i].CandidateName]; ok {
			continue
		}
		seen[records[i].CandidateName] = struct{}{}
		names = append(names, records[i].CandidateName)
	}
	return names
}

// sortExtract orders rows by district slot, candidate name, then amount;
// amount ascending for expenditures, descending for donations. Rows with
// missing amounts sort last either way.
func sortExtract(rows []model.EnrichedRecord, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].District.Slot != rows[j].District.Slot {
			return rows[i].District.Slot < rows[j].District.Slot
		}
		if rows[i].CandidateName != rows[j].CandidateName {
			return rows[i].CandidateName < rows[j].CandidateName
		}
		if !rows[i].Amount.Valid {
			return false
		}
		if !rows[j].Amount.Valid {
			return true
		}
		if ascending {
			return rows[i].Amount.Decimal.LessThan(rows[j].Amount.Decimal)
		}
		return rows[i].Amount.Decimal.GreaterThan(rows[j].Amount.Decimal)
	})
}
