// Package service contains the business logic for the Tripbook API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"strings"

	"github.com/mrios/tripbook/internal/domain"
)

// ResolveIdentity determines whose directory is being read (subject) and who
// is reading it (actor) for one request.
//
// An explicit requestedSubject wins, enabling "view another user's directory";
// otherwise the subject defaults to the actor, a self-view. The actor is taken
// as presented by the authentication layer — no verification happens here;
// this function is the single seam where ambient session identity becomes an
// explicit value.
//
// Returns domain.ErrInvalidSubject when no subject can be resolved at all
// (anonymous request with no explicit target): the read must be rejected,
// not silently served empty.
func ResolveIdentity(actor, requestedSubject string) (domain.Identity, error) {
	subject := strings.TrimSpace(requestedSubject)
	if subject == "" {
		subject = actor
	}
	if subject == "" {
		return domain.Identity{}, fmt.Errorf("service.ResolveIdentity: %w", domain.ErrInvalidSubject)
	}
	return domain.Identity{Subject: subject, Actor: actor}, nil
}
