// Package normalize turns raw disclosure rows into canonical records:
// parsed amounts and dates, composed donor identities, batch-assigned
// donor ids, and the self-funding similarity flag.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openalaska/disclose/internal/model"
)

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// NormalizeAmount parses a currency-formatted string into a signed
// decimal, negating expenditures so that revenue is positive and spending
// negative. Unparsable text (including empty or whitespace-only input)
// yields Valid=false; downstream aggregation must treat that as a missing
// value, never as zero.
func NormalizeAmount(text string, txType model.TransactionType) decimal.NullDecimal {
	cleaned := strings.TrimSpace(amountCleaner.Replace(text))
	if cleaned == "" {
		return decimal.NullDecimal{}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}

	if txType == model.TransactionExpenditure {
		amount = amount.Neg()
	}

	return decimal.NullDecimal{Decimal: amount, Valid: true}
}
