package order

import (
	"fmt"
	"time"
)

// GenerateNumber builds the human-readable order number "PED-YYYYMMDD-NNNN"
// from the order date and a 1-based sequence derived from the count of
// persisted orders. The number is informational: concurrent creations on the
// same day can collide, so it must never be used as a primary key.
func GenerateNumber(date time.Time, seq int64) string {
	return fmt.Sprintf("PED-%s-%04d", date.Format("20060102"), seq)
}
