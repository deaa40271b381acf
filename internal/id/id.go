package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateFormat = "20060102"

// NewTransactionID mints an ID like "txn_20240305_1a2b3c4d": a date
// prefix for readable sorting plus a random suffix.
func NewTransactionID(date time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("txn_%s_%s", date.Format(dateFormat), suffix)
}

// ParseTransactionID extracts the date embedded in a transaction ID.
func ParseTransactionID(txnID string) (time.Time, error) {
	parts := strings.SplitN(txnID, "_", 3)
	if len(parts) != 3 || parts[0] != "txn" {
		return time.Time{}, fmt.Errorf("invalid transaction ID format: %q", txnID)
	}

	date, err := time.Parse(dateFormat, parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date in transaction ID %q: %w", txnID, err)
	}
	return date, nil
}
