package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed collision-resistant identifier, e.g. "pat_2c9e...".
// Prefixes keep the externally visible IDs self-describing.
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
