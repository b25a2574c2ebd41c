package model

import "strings"

// GroupID identifies a class group. Equality is exact string match.
type GroupID string

// DefaultGroup is selected when nothing else is configured
const DefaultGroup GroupID = "ИС-12"

// KnownGroups is the catalog offered by the group selector
var KnownGroups = []GroupID{
	"ИС-11", "ИС-12", "ИС-13",
	"П-21", "П-22", "П-23",
	"КС-31", "КС-32", "АТ-41",
}

// String returns the identifier as is
func (g GroupID) String() string {
	return string(g)
}

// Valid reports whether g can identify a group. Only emptiness is checked;
// whitespace is treated as part of the identifier.
func (g GroupID) Valid() bool {
	return g != ""
}

// IsKnownGroup reports whether g is part of KnownGroups
func IsKnownGroup(g GroupID) bool {
	for _, known := range KnownGroups {
		if known == g {
			return true
		}
	}
	return false
}

// FilterKnownGroups returns catalog entries containing query, case-insensitive
func FilterKnownGroups(query string) []GroupID {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []GroupID
	for _, g := range KnownGroups {
		if query == "" || strings.Contains(strings.ToLower(string(g)), query) {
			out = append(out, g)
		}
	}
	return out
}
