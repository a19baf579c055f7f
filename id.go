package shop

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID mints a globally unique identifier for a new entry.
func NewID() string { return uuid.NewString() }

// migratedPrefix marks ids minted by the schema migrator rather than by a
// user action.
const migratedPrefix = "migrated-"

// newMigratedID mints the id backfilled onto a legacy entry found at
// position i of its collection. The marker keeps backfilled ids
// recognizable, the position and the random part keep them collision-free
// within one migration pass.
func newMigratedID(i int) string {
	return fmt.Sprintf("%s%d-%s", migratedPrefix, i, uuid.NewString())
}

// IsMigratedID reports whether id was backfilled by the schema migrator.
func IsMigratedID(id string) bool { return strings.HasPrefix(id, migratedPrefix) }
