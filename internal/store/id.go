package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NowMillis returns the current time in Unix milliseconds, the timestamp
// unit every stored record uses.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewID builds a record id of the form <kind>_<unixMillis>_<suffix>. The
// millisecond prefix keeps ids time-ordered; the random suffix keeps two
// creations in the same millisecond distinct.
func NewID(kind string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", kind, NowMillis(), suffix)
}
