package normalize

import (
	"runtime"
	"sync"
	"time"

	"github.com/openalaska/disclose/internal/config"
	"github.com/openalaska/disclose/internal/model"
)

// dateLayout is the export's month/day/4-digit-year date format.
const dateLayout = "01/02/2006"

// Options configures a normalization run.
type Options struct {
	// SelfFundingThreshold is the minimum similarity score flagged as
	// self-funding. Zero falls back to the configured default.
	SelfFundingThreshold int

	// ScoreWorkers bounds the similarity-scoring worker pool. Zero means
	// one worker per CPU.
	ScoreWorkers int
}

// Issue records a per-row problem found during normalization. Row is the
// 1-based position of the record in the input sequence.
type Issue struct {
	Row           int
	CandidateName string
	Field         string
	Value         string
}

// Diagnostics collects every per-record problem from a run. Malformed
// amounts and dates degrade the affected record but never abort the
// batch; callers decide whether to report or fail on them.
type Diagnostics struct {
	MalformedAmounts []Issue
	MalformedDates   []Issue
}

// Empty reports whether the run completed without per-record problems.
func (d *Diagnostics) Empty() bool {
	return len(d.MalformedAmounts) == 0 && len(d.MalformedDates) == 0
}

// Normalize converts raw export rows into canonical records. Output order
// matches input order exactly; donor ids are assigned in a second pass
// once every record's donor name is known, so normalization cannot stream
// past the identity stage.
//
// Records with unparsable dates carry a zero time and are listed in the
// diagnostics (null-date policy: the record stays in the batch so its
// amounts still aggregate, and the date failure stays observable).
func Normalize(raws []model.RawRecord, opts Options) ([]model.CanonicalRecord, *Diagnostics) {
	threshold := opts.SelfFundingThreshold
	if threshold <= 0 {
		threshold = config.DefaultSelfFundingThreshold
	}

	records := make([]model.CanonicalRecord, len(raws))
	diags := &Diagnostics{}

	for i := range raws {
		raw := &raws[i]
		rec := model.CanonicalRecord{
			Result:               raw.Result,
			CandidateName:        raw.Name,
			TransactionType:      model.TransactionType(raw.TransactionType),
			PaymentType:          raw.PaymentType,
			PaymentDetail:        raw.PaymentDetail,
			PurposeOfExpenditure: raw.PurposeOfExpenditure,
			Address:              raw.Address,
			City:                 raw.City,
			State:                raw.State,
			Zip:                  raw.Zip,
			Country:              raw.Country,
			Employer:             raw.Employer,
			Occupation:           raw.Occupation,
			ReportType:           raw.ReportType,
			ElectionName:         raw.ElectionName,
			ElectionType:         raw.ElectionType,
			Municipality:         raw.Municipality,
			Office:               raw.Office,
			FilerType:            raw.FilerType,
			ReportYear:           raw.ReportYear,
			FirstName:            raw.FirstName,
			LastBusinessName:     raw.LastBusinessName,
		}

		rec.Amount = NormalizeAmount(raw.Amount, rec.TransactionType)
		if !rec.Amount.Valid {
			diags.MalformedAmounts = append(diags.MalformedAmounts, Issue{
				Row:           i + 1,
				CandidateName: raw.Name,
				Field:         "amount",
				Value:         raw.Amount,
			})
		}

		rec.Date = parseDate(raw.Date, i+1, raw.Name, "date", diags)
		rec.Submitted = parseDate(raw.Submitted, i+1, raw.Name, "submitted", diags)

		rec.DonorFullName = ComposeDonorName(raw.FirstName, raw.LastBusinessName)

		records[i] = rec
	}

	scoreRecords(records, threshold, opts.ScoreWorkers)
	assignDonorIDs(records)

	return records, diags
}

func parseDate(text string, row int, candidate, field string, diags *Diagnostics) time.Time {
	parsed, err := time.Parse(dateLayout, text)
	if err != nil {
		diags.MalformedDates = append(diags.MalformedDates, Issue{
			Row:           row,
			CandidateName: candidate,
			Field:         field,
			Value:         text,
		})
		return time.Time{}
	}
	return parsed
}

// scoreRecords fans similarity scoring out across a bounded worker pool.
// Scoring is stateless per row and workers write by row index, so the
// canonical order never changes.
func scoreRecords(records []model.CanonicalRecord, threshold, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}
	if workers <= 1 {
		for i := range records {
			records[i].DonorScore = SelfFundingScore(records[i].CandidateName, records[i].DonorFullName)
			records[i].IsSelf = IsSelfFunded(records[i].DonorScore, threshold)
		}
		return
	}

	var wg sync.WaitGroup
	rows := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				records[i].DonorScore = SelfFundingScore(records[i].CandidateName, records[i].DonorFullName)
				records[i].IsSelf = IsSelfFunded(records[i].DonorScore, threshold)
			}
		}()
	}
	for i := range records {
		rows <- i
	}
	close(rows)
	wg.Wait()
}
