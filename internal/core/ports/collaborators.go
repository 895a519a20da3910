package ports

import (
	"context"

	"aquaserve/internal/core/domain/model/principal"
)

// Collaborator interfaces consumed by the workflow engine but implemented by
// out-of-scope subsystems. The engine depends only on these boundaries.

// IdentityResolver resolves an authenticated credential into a principal
// carrying the caller's identity, role and tenant-resolution strategy.
// Callers must never trust a client-supplied tenant over a resolved one.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (principal.Principal, error)
}

// FileStore stores uploaded files (KYC documents, organization logos) and
// returns an opaque reference. The workflow engine persists only the
// reference string; upload handling lives with the implementing subsystem.
type FileStore interface {
	Store(ctx context.Context, name string, content []byte) (string, error)
}

// NotificationDispatcher delivers user-facing notifications (KYC verdicts,
// password resets). Dispatch is fire-and-forget: workflow operations never
// await delivery and a failed dispatch never fails the operation.
type NotificationDispatcher interface {
	Dispatch(recipient string, subject string, message string)
}
