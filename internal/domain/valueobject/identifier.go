package valueobject

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a collision-resistant identifier namespaced by the given
// entity-type prefix, e.g. NewID("cat") -> "cat_9f86d081884c7d65...".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
