package district

import (
	"fmt"

	"github.com/openalaska/disclose/internal/common"
	"github.com/openalaska/disclose/internal/model"
)

// MaxHouseDistricts is the number of addressable House districts.
const MaxHouseDistricts = 40

// Index maps candidate names to districts for a single chamber. It is
// built once per run from immutable inputs and is read-only afterwards.
type Index struct {
	districts map[string]model.District
	chamber   model.Chamber
}

// BuildIndex compiles a name-to-district lookup for one chamber. For each
// name, roster slots are scanned in order and the first slot containing
// an exact match wins; a name listed in several slots (a configuration
// mistake) therefore resolves to the earliest. Names absent from every
// slot map to the chamber's sentinel district so attribution can continue
// over the full dataset; callers surface those records as unassigned.
//
// A roster with more slots than the chamber can address, or an
// unrecognized chamber, is a fatal configuration error.
func BuildIndex(chamber model.Chamber, names []string, roster Roster) (*Index, error) {
	if !chamber.Valid() {
		return nil, fmt.Errorf("%w: %q (want %q or %q)",
			common.ErrInvalidChamber, chamber, model.ChamberHouse, model.ChamberSenate)
	}

	limit := MaxHouseDistricts
	if chamber == model.ChamberSenate {
		limit = len(model.SenateAlphabet)
	}
	if len(roster) > limit {
		return nil, fmt.Errorf("%w: %s roster has %d slots, chamber addresses %d",
			common.ErrRosterTooLarge, chamber, len(roster), limit)
	}

	idx := &Index{
		chamber:   chamber,
		districts: make(map[string]model.District, len(names)),
	}

	for _, name := range names {
		if _, ok := idx.districts[name]; ok {
			continue
		}
		idx.districts[name] = locate(chamber, name, roster)
	}

	return idx, nil
}

func locate(chamber model.Chamber, name string, roster Roster) model.District {
	for slot, candidates := range roster {
		for _, candidate := range candidates {
			if candidate == name {
				return model.District{Chamber: chamber, Slot: slot}
			}
		}
	}
	return model.District{Chamber: chamber, Slot: model.UnassignedSlot}
}

// Chamber returns the chamber this index was built for.
func (idx *Index) Chamber() model.Chamber {
	return idx.chamber
}

// Lookup returns the district for a candidate name, or the chamber's
// sentinel district when the name was never indexed.
func (idx *Index) Lookup(name string) model.District {
	if d, ok := idx.districts[name]; ok {
		return d
	}
	return model.District{Chamber: idx.chamber, Slot: model.UnassignedSlot}
}

// Mapping returns a copy of the full name-to-district mapping.
func (idx *Index) Mapping() map[string]model.District {
	out := make(map[string]model.District, len(idx.districts))
	for name, d := range idx.districts {
		out[name] = d
	}
	return out
}
