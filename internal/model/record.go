// Package model defines the record types flowing through the disclosure pipeline.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming into a campaign from money going out.
type TransactionType string

// Transaction types as they appear in the disclosure export.
const (
	TransactionIncome      TransactionType = "Income"
	TransactionExpenditure TransactionType = "Expenditure"
)

// PaymentNonMonetary marks in-kind contributions in the payment_type column.
const PaymentNonMonetary = "Non-Monetary"

// RawRecord is one row of the disclosure export, exactly as sourced.
// Free-text fields keep whatever the filer typed; optional fields may be
// empty. Only result and report_year are numeric in the source schema,
// and the reader surfaces rows where they are not as typed parse errors.
type RawRecord struct {
	Result               int
	Date                 string
	TransactionType      string
	PaymentType          string
	PaymentDetail        string
	Amount               string
	LastBusinessName     string
	FirstName            string
	Address              string
	City                 string
	State                string
	Zip                  string
	Country              string
	Occupation           string
	Employer             string
	PurposeOfExpenditure string
	ReportType           string
	ElectionName         string
	ElectionType         string
	Municipality         string
	Office               string
	FilerType            string
	Name                 string
	ReportYear           int
	Submitted            string
}

// CanonicalRecord is the normalized unit of analysis. It is created once
// per RawRecord during normalization and never modified afterwards; the
// district is attached later on a separate EnrichedRecord.
//
// Amount carries Valid=false when the source text was unparsable, which
// aggregations must treat as missing rather than zero. Amount is negative
// iff the transaction is an expenditure. Date and Submitted are zero when
// the source text did not match the expected format; each such row is
// recorded in the run diagnostics.
type CanonicalRecord struct {
	Result               int
	CandidateName        string
	Amount               decimal.NullDecimal
	Date                 time.Time
	TransactionType      TransactionType
	PaymentType          string
	PaymentDetail        string
	PurposeOfExpenditure string
	DonorFullName        string
	DonorID              int
	Address              string
	City                 string
	State                string
	Zip                  string
	Country              string
	Employer             string
	Occupation           string
	DonorScore           int
	IsSelf               bool
	ReportType           string
	ElectionName         string
	ElectionType         string
	Municipality         string
	Office               string
	FilerType            string
	ReportYear           int
	Submitted            time.Time
	FirstName            string
	LastBusinessName     string
}

// IsIncome reports whether the record is a contribution.
func (r *CanonicalRecord) IsIncome() bool {
	return r.TransactionType == TransactionIncome
}

// IsExpenditure reports whether the record is campaign spending.
func (r *CanonicalRecord) IsExpenditure() bool {
	return r.TransactionType == TransactionExpenditure
}

// IsInKind reports whether the record is a non-monetary contribution.
func (r *CanonicalRecord) IsInKind() bool {
	return r.IsIncome() && r.PaymentType == PaymentNonMonetary
}

// EnrichedRecord is a CanonicalRecord with its attributed district.
// This is the terminal form consumed by reporting.
type EnrichedRecord struct {
	CanonicalRecord
	District District
}
