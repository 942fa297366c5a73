// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationType is one level of Rwanda's administrative hierarchy.
type LocationType string

const (
	LocationProvince LocationType = "PROVINCE"
	LocationDistrict LocationType = "DISTRICT"
	LocationSector   LocationType = "SECTOR"
	LocationCell     LocationType = "CELL"
	LocationVillage  LocationType = "VILLAGE"
)

// locationLevels lists the hierarchy from the root down. A node's parent must sit exactly one slot to the left.
var locationLevels = []LocationType{
	LocationProvince,
	LocationDistrict,
	LocationSector,
	LocationCell,
	LocationVillage,
}

// Column sizes of a location node, counted in characters.
const (
	MaxLocationCodeLength = 32
	MaxLocationNameLength = 150
)

// MaxLocationDepth is the number of levels in the hierarchy.
var MaxLocationDepth = len(locationLevels)

// LocationTypes returns the levels ordered from PROVINCE to VILLAGE.
func LocationTypes() []LocationType {
	return append([]LocationType(nil), locationLevels...)
}

// String returns the string representation of the LocationType.
func (t LocationType) String() string {
	return string(t)
}

// Level returns the zero-based depth of the type (PROVINCE is 0), or -1 when the type is unknown.
func (t LocationType) Level() int {
	for i, level := range locationLevels {
		if level == t {
			return i
		}
	}

	return -1
}

// IsValid checks if the LocationType is one of the five known levels.
func (t LocationType) IsValid() bool {
	return t.Level() >= 0
}

// IsRoot reports whether nodes of this type have no parent.
func (t LocationType) IsRoot() bool {
	return t == LocationProvince
}

// ParentType returns the type a parent of t must have. ok is false for PROVINCE and unknown types.
func (t LocationType) ParentType() (parent LocationType, ok bool) {
	level := t.Level()
	if level <= 0 {
		return "", false
	}

	return locationLevels[level-1], true
}

// ChildType returns the type of t's children. ok is false for VILLAGE and unknown types.
func (t LocationType) ChildType() (child LocationType, ok bool) {
	level := t.Level()
	if level < 0 || level == len(locationLevels)-1 {
		return "", false
	}

	return locationLevels[level+1], true
}

// CanParent reports whether a node of type t may be the direct parent of a node of type child.
func (t LocationType) CanParent(child LocationType) bool {
	want, ok := child.ParentType()

	return ok && want == t
}

// Location is one node of the administrative tree. The parent is kept as an id reference;
// children are derived by querying on ParentID and are never stored on the node.
type Location struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the node.
	Code      string       // Stable short key, unique across the whole tree.
	Name      string       // Display name, e.g. "Kigali City".
	Type      LocationType // Level of the node in the hierarchy.
	ParentID  *uuid.UUID   // Nil only for PROVINCE nodes.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot reports whether the node has no parent.
func (l *Location) IsRoot() bool {
	return l.ParentID == nil
}

// MatchField selects which attribute of an ancestor an attribution query compares against.
type MatchField string

const (
	MatchByCode MatchField = "code"
	MatchByName MatchField = "name"
	// MatchByAny compares against code or name.
	MatchByAny MatchField = ""
)

// IsValid checks if the MatchField is code, name or empty.
func (m MatchField) IsValid() bool {
	switch m {
	case MatchByCode, MatchByName, MatchByAny:
		return true
	default:
		return false
	}
}

// Matches reports whether loc's code or name, as selected by m, equals value exactly.
func (m MatchField) Matches(loc *Location, value string) bool {
	switch m {
	case MatchByCode:
		return loc.Code == value
	case MatchByName:
		return loc.Name == value
	case MatchByAny:
		return loc.Code == value || loc.Name == value
	default:
		return false
	}
}
