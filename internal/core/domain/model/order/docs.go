// Package order implements the installation-order aggregate, the central
// state machine of the fulfillment workflow.
//
// An order progresses from OPEN to CLOSED (terminal) while an orthogonal
// assignment sub-state machine tracks the technician approval protocol:
//
//	unassigned ──> PENDING ──┬──> APPROVED ──(removal)──> unassigned
//	                         └──> REJECTED ──(reassign)──> PENDING
//
// Stage flags (payment, KYC, assignment, completion) are exposed as a derived
// read-only projection; callers can never set them directly, so the flags and
// the top-level status cannot disagree. In particular the technician-assigned
// stage is true exactly when a technician is assigned with an APPROVED
// decision.
//
// The order-local KYC approval is deliberately distinct from the customer
// record's own KYC status: the former gates this one installation, the latter
// is identity-level and is propagated onto orders through a separate path.
package order
