package http

// Request and response bodies of the HTTP surface. Identifiers travel as
// canonical UUID strings; enum values use the same vocabulary the domain
// model validates.

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	DeviceID   string `json:"device_id"`
}

// OrderCreated is the response of POST /api/v1/orders.
type OrderCreated struct {
	ID string `json:"id"`
}

// NewCustomer is the body of POST /api/v1/customers.
type NewCustomer struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// CustomerRegistered is the response of POST /api/v1/customers.
type CustomerRegistered struct {
	ID string `json:"id"`
}

// NewTechnician is the body of POST /api/v1/technicians.
type NewTechnician struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// TechnicianRegistered is the response of POST /api/v1/technicians.
type TechnicianRegistered struct {
	ID string `json:"id"`
}

// Payment is the body of POST /api/v1/orders/:id/payment.
type Payment struct {
	Amount string `json:"amount"`
}

// KycReview is the body of the order and customer KYC review endpoints.
// Document carries an optional base64-encoded document for the customer
// variant; the order variant ignores it.
type KycReview struct {
	Verdict  string `json:"verdict"`
	Document []byte `json:"document,omitempty"`
}

// Assignment is the body of the order and service-request assignment
// endpoints.
type Assignment struct {
	TechnicianID string `json:"technician_id"`
}

// TechnicianDecision is the body of POST /api/v1/orders/:id/decision.
type TechnicianDecision struct {
	Approved bool `json:"approved"`
}

// OnboardingReview is the body of POST /api/v1/technicians/:id/onboarding.
type OnboardingReview struct {
	IsActive  bool   `json:"is_active"`
	KycStatus string `json:"kyc_status"`
}

// NewServiceRequest is the body of POST /api/v1/service-requests.
type NewServiceRequest struct {
	CustomerID string `json:"customer_id"`
	DeviceID   string `json:"device_id"`
	Issue      string `json:"issue"`
}

// ServiceRequestCreated is the response of POST /api/v1/service-requests.
type ServiceRequestCreated struct {
	ID string `json:"id"`
}

// StatusChange is the body of PUT /api/v1/service-requests/:id/status.
type StatusChange struct {
	Status string `json:"status"`
}

// Technician is one row of GET /api/v1/technicians/available.
type Technician struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// OpenOrder is one row of GET /api/v1/orders.
type OpenOrder struct {
	ID                    string `json:"id"`
	CustomerID            string `json:"customer_id"`
	DeviceID              string `json:"device_id"`
	PaymentReceived       bool   `json:"payment_received"`
	KycVerified           bool   `json:"kyc_verified"`
	TechnicianAssigned    bool   `json:"technician_assigned"`
	InstallationCompleted bool   `json:"installation_completed"`
}
