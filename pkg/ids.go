package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// NewID returns a new record identifier in canonical form.
func NewID() string {
	return uuid.NewString()
}

// CanonicalID normalizes any accepted uuid spelling (upper case, braces, urn prefix)
// to the lower-case hyphenated form every table stores.
func CanonicalID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id.String(), nil
}
