package domain

import "time"

// Visit is one row of the append-only visit ledger: somebody read somebody
// else's event directory. Rows are never updated or deleted, and repeat
// visits are all recorded as distinct rows — the ledger is a raw history,
// not a deduplicated "last seen" table.
type Visit struct {
	// VisitedAt is set by the ledger at insertion time, never by the
	// client, so ledger order is monotonic with insertion order.
	VisitedAt time.Time `json:"timestamp"`

	// VisitorEmail identifies the actor. Empty is a valid, loggable value
	// meaning the visit was anonymous.
	VisitorEmail string `json:"visitor_email"`

	// VisitedEmail identifies the subject whose directory was read.
	// Required; a visit with no subject is rejected before insertion.
	VisitedEmail string `json:"visited_email"`

	// Token is an opaque identifier unique across the ledger. No semantic
	// meaning is attached to its value.
	Token string `json:"token"`
}
