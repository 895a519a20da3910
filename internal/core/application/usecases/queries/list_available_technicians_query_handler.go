package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
)

// ListAvailableTechniciansQueryHandler reads eligible technicians straight
// from the database, bypassing the aggregate repositories.
type ListAvailableTechniciansQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableTechniciansQueryHandler creates a handler for availability
// listings. Requires a GORM database connection for query execution.
func NewListAvailableTechniciansQueryHandler(db *gorm.DB) ListAvailableTechniciansQueryHandler {
	return ListAvailableTechniciansQueryHandler{db: db}
}

// Handle returns the tenant's technicians with work_status free and an
// approved KYC, sorted by name for stable output.
func (h ListAvailableTechniciansQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableTechniciansQuery,
) ([]ListAvailableTechniciansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	technicians := make([]ListAvailableTechniciansQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name
		FROM technicians
		WHERE org_id = ?
		  AND work_status = ?
		  AND kyc_status = ?
		ORDER BY name, id
	`, query.OrgID().Bytes(), string(technician.WorkFree), string(kernel.KycApproved)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListAvailableTechniciansQueryResponse
		var id, userID uuid.UUID
		var name string

		if err = rows.Scan(&id, &userID, &name); err != nil {
			return nil, err
		}

		technicianID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		technicianUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = technicianID
		resp.UserID = technicianUserID
		resp.Name = name
		technicians = append(technicians, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return technicians, nil
}
