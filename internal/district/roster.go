// Package district builds the name-to-district lookup from ordered rosters
// and attributes normalized records to districts.
package district

// Roster is an ordered sequence of district slots for one chamber, each
// slot an ordered list of candidate names on that district's ballot. Slot
// position defines the district: slot 0 is House district 1 or Senate
// district A. Rosters are immutable input configuration; they change only
// between runs, when ballots change.
type Roster [][]string

// Names flattens the roster into its candidate names, deduplicated and in
// slot order. A name listed in more than one slot appears once, at its
// earliest position.
func (r Roster) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, slot := range r {
		for _, name := range slot {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
