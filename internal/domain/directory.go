package domain

// Identity is the outcome of resolving a directory request: whose directory
// is being read (Subject) and who is reading it (Actor, empty when anonymous).
type Identity struct {
	Subject string
	Actor   string
}

// SelfView reports whether the actor is reading their own directory.
// An anonymous actor is never a self-view.
func (id Identity) SelfView() bool {
	return id.Actor != "" && id.Actor == id.Subject
}

// Directory is the combined read model served by the query engine: the
// subject's trip events plus, on a self-view only, their visit ledger.
type Directory struct {
	Subject string
	Events  []TripEvent

	// Visits is nil unless the request was a self-view; the ledger is
	// visible only to the subject themself. A self-view with an empty
	// ledger carries a non-nil empty slice, which is why the wire shape
	// lives in the handler — encoding/json's omitempty cannot tell the
	// two apart.
	Visits []Visit
}
