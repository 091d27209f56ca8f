// Package ids generates identifiers for stored entities.
package ids

import "github.com/google/uuid"

// New returns a new unique identifier.
//
// IDs are UUIDv7 strings: the leading 48 bits are a millisecond timestamp, so
// IDs created later compare greater as plain strings.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
