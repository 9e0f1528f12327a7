package model

import "time"

// ReconciliationEntry records an import whose stock decrement did not happen.
// Entries are written only when the two import writes ran without a transaction.
type ReconciliationEntry struct {
	ImportID  string    `json:"importId"`
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason"`
	RequestID string    `json:"requestId,omitempty"`
	FailedAt  time.Time `json:"failedAt"`
}
