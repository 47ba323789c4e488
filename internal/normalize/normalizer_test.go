package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalaska/disclose/internal/config"
	"github.com/openalaska/disclose/internal/model"
)

func rawIncome(candidate, first, last, amount string) model.RawRecord {
	return model.RawRecord{
		Name:             candidate,
		FirstName:        first,
		LastBusinessName: last,
		Amount:           amount,
		TransactionType:  "Income",
		PaymentType:      "Check",
		Date:             "10/15/2024",
		Submitted:        "10/20/2024",
		Office:           "House",
	}
}

func TestNormalize_EndToEnd(t *testing.T) {
	raws := []model.RawRecord{
		rawIncome("Jane Doe", "", "Doe, Jane", "$500"),
		rawIncome("Jane Doe", "John Q", "Public", "$200"),
		{
			Name:             "Jane Doe",
			LastBusinessName: "Print Shop",
			Amount:           "$150.00",
			TransactionType:  "Expenditure",
			Date:             "10/16/2024",
			Submitted:        "10/20/2024",
			Office:           "House",
		},
	}

	records, diags := Normalize(raws, Options{})
	require.Len(t, records, 3)
	assert.True(t, diags.Empty())

	// Amounts come out signed: revenue positive, expenditure negative.
	wantAmounts := []string{"500", "200", "-150"}
	for i, want := range wantAmounts {
		require.True(t, records[i].Amount.Valid, "record %d", i)
		assert.True(t, records[i].Amount.Decimal.Equal(decimal.RequireFromString(want)),
			"record %d: got %s want %s", i, records[i].Amount.Decimal, want)
	}

	// Self-funding: "Doe, Jane" matches candidate "Jane Doe"; a stranger
	// and a print shop do not.
	assert.True(t, records[0].IsSelf)
	assert.False(t, records[1].IsSelf)
	assert.False(t, records[2].IsSelf)

	// Dates parse from the export's month/day/year layout.
	assert.Equal(t, time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC), records[0].Submitted)

	// The name column becomes candidate_name; donor names compose with
	// the bare space join.
	assert.Equal(t, "Jane Doe", records[0].CandidateName)
	assert.Equal(t, " Doe, Jane", records[0].DonorFullName)
	assert.Equal(t, "John Q Public", records[1].DonorFullName)
}

func TestNormalize_AmountSignMatchesTransactionType(t *testing.T) {
	raws := []model.RawRecord{
		rawIncome("A", "X", "Y", "$10.00"),
		{Name: "A", Amount: "25", TransactionType: "Expenditure", Date: "01/01/2024", Submitted: "01/01/2024"},
		rawIncome("B", "Z", "W", "$3.50"),
	}

	records, _ := Normalize(raws, Options{})
	for i := range records {
		if !records[i].Amount.Valid {
			continue
		}
		positive := records[i].Amount.Decimal.IsPositive() || records[i].Amount.Decimal.IsZero()
		assert.Equal(t, records[i].TransactionType == model.TransactionIncome, positive,
			"record %d sign disagrees with transaction type", i)
	}
}

func TestNormalize_DonorIDsAreABijectionWithNames(t *testing.T) {
	raws := []model.RawRecord{
		rawIncome("A", "Jane", "Smith", "$1"),
		rawIncome("B", "John", "Public", "$2"),
		rawIncome("C", "Jane", "Smith", "$3"),
		rawIncome("D", "", "Acme LLC", "$4"),
		rawIncome("E", "John", "Public", "$5"),
	}

	records, _ := Normalize(raws, Options{})
	require.Len(t, records, 5)

	byName := make(map[string]int)
	byID := make(map[int]string)
	for _, rec := range records {
		if id, ok := byName[rec.DonorFullName]; ok {
			assert.Equal(t, id, rec.DonorID, "same donor name must keep the same id")
		}
		if name, ok := byID[rec.DonorID]; ok {
			assert.Equal(t, name, rec.DonorFullName, "same id must mean the same donor name")
		}
		byName[rec.DonorFullName] = rec.DonorID
		byID[rec.DonorID] = rec.DonorFullName
	}
	assert.Len(t, byName, 3)

	// Group-then-number semantics: ids follow the sorted name set, and
	// " Acme LLC" sorts before the personal names.
	assert.Equal(t, 0, records[3].DonorID)
}

func TestNormalize_MalformedDatesAreDiagnosedNotDropped(t *testing.T) {
	raw := rawIncome("Jane Doe", "Jane", "Doe", "$10")
	raw.Date = "2024-10-15" // ISO, not the export's layout

	records, diags := Normalize([]model.RawRecord{raw}, Options{})
	require.Len(t, records, 1, "a bad date must not drop the record")

	assert.True(t, records[0].Date.IsZero())
	require.Len(t, diags.MalformedDates, 1)
	assert.Equal(t, 1, diags.MalformedDates[0].Row)
	assert.Equal(t, "date", diags.MalformedDates[0].Field)
	assert.Equal(t, "2024-10-15", diags.MalformedDates[0].Value)

	// The valid submitted date still parses.
	assert.False(t, records[0].Submitted.IsZero())
}

func TestNormalize_MalformedAmountsAreDiagnosedNotZeroed(t *testing.T) {
	raw := rawIncome("Jane Doe", "Jane", "Doe", "refunded")

	records, diags := Normalize([]model.RawRecord{raw}, Options{})
	require.Len(t, records, 1)

	assert.False(t, records[0].Amount.Valid)
	require.Len(t, diags.MalformedAmounts, 1)
	assert.Equal(t, "refunded", diags.MalformedAmounts[0].Value)
}

func TestNormalize_OutputOrderMatchesInput(t *testing.T) {
	var raws []model.RawRecord
	names := []string{"Zed", "Alice", "Mallory", "Bob", "Eve"}
	for _, n := range names {
		raws = append(raws, rawIncome(n, n, "Donor", "$1"))
	}

	records, _ := Normalize(raws, Options{ScoreWorkers: 4})
	require.Len(t, records, len(names))
	for i, n := range names {
		assert.Equal(t, n, records[i].CandidateName)
	}
}

func TestNormalize_ThresholdBoundary(t *testing.T) {
	// Same name guarantees a score of 100; an impossibly high threshold
	// turns the flag off, proving the threshold is honored rather than
	// a hardcoded 79.
	raw := rawIncome("Jane Doe", "Jane", "Doe", "$1")

	records, _ := Normalize([]model.RawRecord{raw}, Options{SelfFundingThreshold: 101})
	assert.Equal(t, 100, records[0].DonorScore)
	assert.False(t, records[0].IsSelf)

	records, _ = Normalize([]model.RawRecord{raw}, Options{SelfFundingThreshold: config.DefaultSelfFundingThreshold})
	assert.True(t, records[0].IsSelf)
}

func TestApplyOverrides(t *testing.T) {
	records := []model.CanonicalRecord{
		{CandidateName: "Jane Doe", Office: ""},
		{CandidateName: "John Roe", Office: "Senate"},
	}

	ApplyOverrides(records, config.Overrides{
		"Jane Doe": {"office": "House", "shoe_size": "9"},
	})

	assert.Equal(t, "House", records[0].Office)
	assert.Equal(t, "Senate", records[1].Office, "untouched candidates keep their fields")
}
