package normalize

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/openalaska/disclose/internal/model"
)

// ComposeDonorName joins a donor's first name and last/business name with
// a single space, treating a missing side as the empty string. The result
// is deliberately not trimmed: a business-only donor composes to
// " BusinessName" and a fully absent donor to " ", matching how donor
// names have been keyed in every prior reporting cycle. Changing this
// would renumber donors across cycles.
func ComposeDonorName(first, last string) string {
	return first + " " + last
}

// SelfFundingScore computes a token-set similarity ratio between the
// candidate's name and the donor's composed name, scaled 0-100. The score
// is order-independent and tolerant of punctuation and case, so
// "Smith, Jane" scores high against "Jane Smith". A blank name on either
// side scores 0.
func SelfFundingScore(candidate, donor string) int {
	if strings.TrimSpace(candidate) == "" || strings.TrimSpace(donor) == "" {
		return 0
	}
	return fuzzy.TokenSetRatio(candidate, donor)
}

// IsSelfFunded reports whether a similarity score marks the donor as the
// candidate funding their own campaign.
func IsSelfFunded(score, threshold int) bool {
	return score >= threshold
}

// assignDonorIDs numbers the distinct donor names across the whole record
// set and writes each record's id. Ids follow group-by-then-number
// semantics over the sorted name set, not a streaming counter: they are
// stable within a run and form a bijection with distinct donor names.
// Record order is untouched.
func assignDonorIDs(records []model.CanonicalRecord) {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for i := range records {
		name := records[i].DonorFullName
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	for i := range records {
		records[i].DonorID = ids[records[i].DonorFullName]
	}
}
