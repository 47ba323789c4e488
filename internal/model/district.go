package model

import "strconv"

// Chamber identifies one of the two legislative bodies. Each chamber has
// its own district numbering scheme: House districts are numbered 1-40,
// Senate districts are lettered A-T.
type Chamber string

// Recognized chambers.
const (
	ChamberHouse  Chamber = "house"
	ChamberSenate Chamber = "senate"
)

// Valid reports whether the chamber is one of the recognized values.
func (c Chamber) Valid() bool {
	return c == ChamberHouse || c == ChamberSenate
}

// Office returns the office column value that selects this chamber's records.
func (c Chamber) Office() string {
	switch c {
	case ChamberHouse:
		return "House"
	case ChamberSenate:
		return "Senate"
	default:
		return ""
	}
}

// SenateAlphabet holds the letters available for Senate district names.
// A roster with more slots than letters is a configuration error.
const SenateAlphabet = "ABCDEFGHIJKLMNOPQRST"

// SentinelSenateLetter is the reserved letter for Senate candidates with
// no roster match. It sits outside SenateAlphabet on purpose.
const SentinelSenateLetter = "Z"

// UnassignedSlot marks a district that no roster slot produced.
const UnassignedSlot = -1

// District is a chamber-scoped district identifier. Slot is the 0-based
// roster position; UnassignedSlot means the candidate matched no roster
// entry and the record should be surfaced as unassigned rather than dropped.
type District struct {
	Chamber Chamber
	Slot    int
}

// Unassigned reports whether this is the sentinel district.
func (d District) Unassigned() bool {
	return d.Slot == UnassignedSlot
}

// Label renders the district the way analysts write it: "12" for House
// district twelve, "B" for the second Senate district. The sentinel
// renders as "0" for the House and "Z" for the Senate.
func (d District) Label() string {
	switch d.Chamber {
	case ChamberHouse:
		if d.Unassigned() {
			return "0"
		}
		return strconv.Itoa(d.Slot + 1)
	case ChamberSenate:
		if d.Unassigned() || d.Slot >= len(SenateAlphabet) {
			return SentinelSenateLetter
		}
		return string(SenateAlphabet[d.Slot])
	default:
		return ""
	}
}
