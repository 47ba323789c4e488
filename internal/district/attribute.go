package district

import "github.com/openalaska/disclose/internal/model"

// Attribute tags each canonical record with its district via a pure
// lookup. Inputs are not mutated; the enriched records come back in the
// same order. Attribution runs independently per chamber since each index
// is chamber-specific.
func Attribute(records []model.CanonicalRecord, idx *Index) []model.EnrichedRecord {
	enriched := make([]model.EnrichedRecord, len(records))
	for i := range records {
		enriched[i] = model.EnrichedRecord{
			CanonicalRecord: records[i],
			District:        idx.Lookup(records[i].CandidateName),
		}
	}
	return enriched
}

// CandidateNames collects the distinct candidate names from a record set,
// order-preserving by first appearance.
func CandidateNames(records []model.CanonicalRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range records {
		name := records[i].CandidateName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
