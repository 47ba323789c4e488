// Package ingest reads a disclosure CSV export into typed raw records.
// Schema problems (missing columns, non-numeric numeric fields) surface
// here as typed errors, before the core pipeline ever sees a row.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/openalaska/disclose/internal/common"
	"github.com/openalaska/disclose/internal/model"
)

// separatorColumn is a column in the commission's export that carries no
// data; it is dropped entirely. Rows that somehow do carry a value there
// are still accepted, with a warning.
const separatorColumn = "--------"

// Columns the pipeline cannot run without.
var requiredColumns = []string{
	"result",
	"date",
	"transaction_type",
	"payment_type",
	"amount",
	"last/business_name",
	"first_name",
	"report_type",
	"election_type",
	"office",
	"filer_type",
	"name",
	"report_year",
	"submitted",
}

// NormalizeHeader lowercases a column name and converts spaces to
// underscores, so "Last/Business Name" becomes "last/business_name". The
// semantic rename of "name" to candidate_name happens during
// normalization, where the donor name fields exist to collide with.
func NormalizeHeader(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ReadFile reads a disclosure export from disk, with a byte progress bar
// for the multi-hundred-megabyte statewide exports.
func ReadFile(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close export file", "path", path, "error", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat export: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading export")
	records, err := Parse(io.TeeReader(f, bar))
	_ = bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("Read disclosure export", "path", path, "records", len(records))
	return records, nil
}

// Parse reads the export from a reader. The first row must be the header;
// every following row becomes one RawRecord in input order.
func Parse(r io.Reader) ([]model.RawRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[NormalizeHeader(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", common.ErrMissingColumn, name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []model.RawRecord
	warnedSeparator := false
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", common.ErrMalformedRow, rowNum, err)
		}

		if v := field(row, separatorColumn); v != "" && !warnedSeparator {
			slog.Warn("Separator column unexpectedly carries data; ignoring it",
				"row", rowNum, "value", v)
			warnedSeparator = true
		}

		result, err := strconv.Atoi(strings.TrimSpace(field(row, "result")))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: result %q is not numeric",
				common.ErrMalformedRow, rowNum, field(row, "result"))
		}
		reportYear, err := strconv.Atoi(strings.TrimSpace(field(row, "report_year")))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: report_year %q is not numeric",
				common.ErrMalformedRow, rowNum, field(row, "report_year"))
		}

		records = append(records, model.RawRecord{
			Result:               result,
			Date:                 field(row, "date"),
			TransactionType:      field(row, "transaction_type"),
			PaymentType:          field(row, "payment_type"),
			PaymentDetail:        field(row, "payment_detail"),
			Amount:               field(row, "amount"),
			LastBusinessName:     field(row, "last/business_name"),
			FirstName:            field(row, "first_name"),
			Address:              field(row, "address"),
			City:                 field(row, "city"),
			State:                field(row, "state"),
			Zip:                  field(row, "zip"),
			Country:              field(row, "country"),
			Occupation:           field(row, "occupation"),
			Employer:             field(row, "employer"),
			PurposeOfExpenditure: field(row, "purpose_of_expenditure"),
			ReportType:           field(row, "report_type"),
			ElectionName:         field(row, "election_name"),
			ElectionType:         field(row, "election_type"),
			Municipality:         field(row, "municipality"),
			Office:               field(row, "office"),
			FilerType:            field(row, "filer_type"),
			Name:                 field(row, "name"),
			ReportYear:           reportYear,
			Submitted:            field(row, "submitted"),
		})
	}

	return records, nil
}
