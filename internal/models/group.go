package models

import (
	"fmt"
	"strings"
)

// GroupType classifies what kind of community a group is.
type GroupType string

const (
	GroupTypeParents GroupType = "parents"
	GroupTypeClub    GroupType = "club"
	GroupTypeStudy   GroupType = "study"
	GroupTypeOther   GroupType = "other"
)

// ParseGroupType normalizes s and returns the matching GroupType.
// Unknown values are rejected rather than coerced to GroupTypeOther.
func ParseGroupType(s string) (GroupType, error) {
	switch t := GroupType(strings.ToLower(strings.TrimSpace(s))); t {
	case GroupTypeParents, GroupTypeClub, GroupTypeStudy, GroupTypeOther:
		return t, nil
	default:
		return "", fmt.Errorf("unknown group type %q", s)
	}
}

// Group is a named container owned by one user. Groups own collections;
// deleting a group deletes its collections, their members and logs.
type Group struct {
	// ID is the unique identifier for the group.
	ID string

	// OwnerID is the user who created the group. Only the owner can see
	// or modify the group and anything below it.
	OwnerID string

	// Name is the display name of the group (e.g., "Class 3 Parents").
	Name string

	Type GroupType

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupStats aggregates the collections of one group.
type GroupStats struct {
	CollectionsCount int64
	TotalAmount      int64
}
