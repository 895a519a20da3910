// Package commands contains the workflow engine's write operations.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, guarded domain transitions, persistence.
package commands

import (
	"context"

	"aquaserve/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries:
// each handler declares the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// TechnicianRepoFactory provides access to the technician repository within a transaction.
	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	// RequestRepoFactory provides access to the service-request repository within a transaction.
	RequestRepoFactory interface {
		ServiceRequestRepository() ports.ServiceRequestRepository
	}

	// OrderUoW manages transactions for order-only operations: creation,
	// payment, order-local KYC review, assignment removal, technician
	// decisions and completion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignOrderUoW manages transactions for installation-order
	// assignment, which reads the technician and writes the order.
	AssignOrderUoW interface {
		TxManager
		OrderRepoFactory
		TechnicianRepoFactory
	}

	// AssignOrderUoWFactory creates new assignment unit of work instances.
	AssignOrderUoWFactory interface {
		Create() AssignOrderUoW
	}

	// KycUoW manages transactions for the customer KYC review, which
	// writes the customer record and propagates onto the order store.
	KycUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// KycUoWFactory creates new KYC unit of work instances.
	KycUoWFactory interface {
		Create() KycUoW
	}

	// CustomerUoW manages transactions for customer-only operations:
	// registration.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// TechnicianUoW manages transactions for technician-only operations.
	TechnicianUoW interface {
		TxManager
		TechnicianRepoFactory
	}

	// TechnicianUoWFactory creates new technician unit of work instances.
	TechnicianUoWFactory interface {
		Create() TechnicianUoW
	}

	// RequestUoW manages transactions for service-request operations,
	// which coordinate the request with technician availability.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		TechnicianRepoFactory
	}

	// RequestUoWFactory creates new service-request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}
)
