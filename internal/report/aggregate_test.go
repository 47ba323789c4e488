package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalaska/disclose/internal/model"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func missingAmount() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func enriched(candidate, donor, amt string) model.EnrichedRecord {
	rec := model.EnrichedRecord{}
	rec.CandidateName = candidate
	rec.DonorFullName = donor
	if amt != "" {
		rec.Amount = amount(amt)
	}
	return rec
}

func TestComputeStats(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		records := []model.EnrichedRecord{
			enriched("A", "x", "100"),
			enriched("A", "y", "300"),
			enriched("A", "z", "200"),
		}
		stats := ComputeStats(records)
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, 0, stats.Missing)
		assert.True(t, stats.Total.Equal(decimal.NewFromInt(600)))
		assert.True(t, stats.Mean.Equal(decimal.NewFromInt(200)))
		assert.True(t, stats.Median.Equal(decimal.NewFromInt(200)))
		assert.True(t, stats.Min.Equal(decimal.NewFromInt(100)))
		assert.True(t, stats.Max.Equal(decimal.NewFromInt(300)))
	})

	t.Run("even count medians between the middle pair", func(t *testing.T) {
		records := []model.EnrichedRecord{
			enriched("A", "x", "100"),
			enriched("A", "y", "200"),
			enriched("A", "z", "300"),
			enriched("A", "w", "400"),
		}
		stats := ComputeStats(records)
		assert.True(t, stats.Median.Equal(decimal.NewFromInt(250)))
	})

	t.Run("missing amounts counted separately not as zero", func(t *testing.T) {
		records := []model.EnrichedRecord{
			enriched("A", "x", "100"),
			enriched("A", "y", ""),
		}
		stats := ComputeStats(records)
		assert.Equal(t, 1, stats.Count)
		assert.Equal(t, 1, stats.Missing)
		assert.True(t, stats.Total.Equal(decimal.NewFromInt(100)))
		assert.True(t, stats.Mean.Equal(decimal.NewFromInt(100)),
			"a missing amount must not drag the mean toward zero")
	})

	t.Run("empty input", func(t *testing.T) {
		stats := ComputeStats(nil)
		assert.Equal(t, 0, stats.Count)
		assert.True(t, stats.Total.IsZero())
	})
}

func TestSumByDonor(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "Jane Smith", "100"),
		enriched("A", "Jane Smith", "250"),
		enriched("A", "John Public", "50"),
		enriched("A", "Jane Smith", ""),
	}
	sums := SumByDonor(records)
	require.Len(t, sums, 2)
	assert.True(t, sums["Jane Smith"].Equal(decimal.NewFromInt(350)))
	assert.True(t, sums["John Public"].Equal(decimal.NewFromInt(50)))
}

func TestTopDonors(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "Small", "10"),
		enriched("A", "Big", "500"),
		enriched("A", "Mid", "100"),
		enriched("A", "Big", "500"),
		enriched("A", "AlsoMid", "100"),
	}

	top := TopDonors(records, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Big", top[0].Name)
	assert.True(t, top[0].Total.Equal(decimal.NewFromInt(1000)))
	// Equal totals rank alphabetically for a stable report.
	assert.Equal(t, "AlsoMid", top[1].Name)
	assert.Equal(t, "Mid", top[2].Name)

	assert.Len(t, TopDonors(records, 0), 4, "n of zero means no truncation")
}

func TestDonorThresholdSets(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "UnderInOne", "300"),
		enriched("A", "UnderInOne", "199"),
		enriched("A", "OverInTotal", "300"),
		enriched("A", "OverInTotal", "200"),
	}

	keep := donorsAtLeast(records, decimal.NewFromInt(500))
	assert.Contains(t, keep, "OverInTotal")
	assert.NotContains(t, keep, "UnderInOne")

	spend := []model.EnrichedRecord{
		enriched("A", "Printer", "-600"),
		enriched("A", "Printer", "-600"),
		enriched("A", "CoffeeShop", "-40"),
	}
	payees := payeesAtMost(spend, decimal.NewFromInt(-1000))
	assert.Contains(t, payees, "Printer")
	assert.NotContains(t, payees, "CoffeeShop")
}
