package normalize

import (
	"log/slog"

	"github.com/openalaska/disclose/internal/config"
	"github.com/openalaska/disclose/internal/model"
)

// ApplyOverrides patches canonical records with the per-cycle override
// table, keyed by literal candidate name. Unknown field names are logged
// and skipped rather than failing the run.
func ApplyOverrides(records []model.CanonicalRecord, overrides config.Overrides) {
	if len(overrides) == 0 {
		return
	}

	for i := range records {
		fields, ok := overrides[records[i].CandidateName]
		if !ok {
			continue
		}
		for field, value := range fields {
			switch field {
			case "office":
				records[i].Office = value
			case "filer_type":
				records[i].FilerType = value
			case "municipality":
				records[i].Municipality = value
			default:
				slog.Warn("Skipping unknown override field",
					"candidate", records[i].CandidateName,
					"field", field)
			}
		}
	}
}
