// Package http exposes the workflow operations over an echo server.
// Every route runs behind the principal middleware; handlers resolve the
// caller's tenant through the principal, never from the request body, then
// translate between transport models and commands/queries.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"aquaserve/internal/core/application/usecases/commands"
	"aquaserve/internal/core/application/usecases/queries"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
	"aquaserve/internal/core/domain/model/servicerequest"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler                commands.CreateOrderCommandHandler
	receivePaymentHandler             commands.ReceivePaymentCommandHandler
	reviewOrderKycHandler             commands.ReviewOrderKycCommandHandler
	assignTechnicianHandler           commands.AssignTechnicianCommandHandler
	removeAssignmentHandler           commands.RemoveAssignmentCommandHandler
	recordTechnicianDecisionHandler   commands.RecordTechnicianDecisionCommandHandler
	completeInstallationHandler       commands.CompleteInstallationCommandHandler
	reviewCustomerKycHandler          commands.ReviewCustomerKycCommandHandler
	registerCustomerHandler           commands.RegisterCustomerCommandHandler
	registerTechnicianHandler         commands.RegisterTechnicianCommandHandler
	reviewTechnicianOnboardingHandler commands.ReviewTechnicianOnboardingCommandHandler
	createServiceRequestHandler       commands.CreateServiceRequestCommandHandler
	assignServiceRequestHandler       commands.AssignServiceRequestCommandHandler
	updateServiceRequestStatusHandler commands.UpdateServiceRequestStatusCommandHandler

	listAvailableTechniciansHandler queries.ListAvailableTechniciansQueryHandler
	getOpenOrdersHandler            queries.GetOpenOrdersQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	receivePaymentHandler commands.ReceivePaymentCommandHandler,
	reviewOrderKycHandler commands.ReviewOrderKycCommandHandler,
	assignTechnicianHandler commands.AssignTechnicianCommandHandler,
	removeAssignmentHandler commands.RemoveAssignmentCommandHandler,
	recordTechnicianDecisionHandler commands.RecordTechnicianDecisionCommandHandler,
	completeInstallationHandler commands.CompleteInstallationCommandHandler,
	reviewCustomerKycHandler commands.ReviewCustomerKycCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerTechnicianHandler commands.RegisterTechnicianCommandHandler,
	reviewTechnicianOnboardingHandler commands.ReviewTechnicianOnboardingCommandHandler,
	createServiceRequestHandler commands.CreateServiceRequestCommandHandler,
	assignServiceRequestHandler commands.AssignServiceRequestCommandHandler,
	updateServiceRequestStatusHandler commands.UpdateServiceRequestStatusCommandHandler,
	listAvailableTechniciansHandler queries.ListAvailableTechniciansQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:                createOrderHandler,
		receivePaymentHandler:             receivePaymentHandler,
		reviewOrderKycHandler:             reviewOrderKycHandler,
		assignTechnicianHandler:           assignTechnicianHandler,
		removeAssignmentHandler:           removeAssignmentHandler,
		recordTechnicianDecisionHandler:   recordTechnicianDecisionHandler,
		completeInstallationHandler:       completeInstallationHandler,
		reviewCustomerKycHandler:          reviewCustomerKycHandler,
		registerCustomerHandler:           registerCustomerHandler,
		registerTechnicianHandler:         registerTechnicianHandler,
		reviewTechnicianOnboardingHandler: reviewTechnicianOnboardingHandler,
		createServiceRequestHandler:       createServiceRequestHandler,
		assignServiceRequestHandler:       assignServiceRequestHandler,
		updateServiceRequestStatusHandler: updateServiceRequestStatusHandler,
		listAvailableTechniciansHandler:   listAvailableTechniciansHandler,
		getOpenOrdersHandler:              getOpenOrdersHandler,
	}
}

// RegisterRoutes mounts every workflow operation under /api/v1 behind the
// principal middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, principalMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1", principalMiddleware)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOpenOrders)
	api.POST("/orders/:id/payment", s.ReceivePayment)
	api.POST("/orders/:id/kyc", s.ReviewOrderKyc)
	api.POST("/orders/:id/assignment", s.AssignTechnician)
	api.DELETE("/orders/:id/assignment", s.RemoveAssignment)
	api.POST("/orders/:id/decision", s.RecordTechnicianDecision)
	api.POST("/orders/:id/completion", s.CompleteInstallation)

	api.POST("/customers", s.RegisterCustomer)
	api.POST("/customers/:id/kyc", s.ReviewCustomerKyc)

	api.POST("/technicians", s.RegisterTechnician)
	api.GET("/technicians/available", s.ListAvailableTechnicians)
	api.POST("/technicians/:id/onboarding", s.ReviewTechnicianOnboarding)

	api.POST("/service-requests", s.CreateServiceRequest)
	api.POST("/service-requests/:id/assignment", s.AssignServiceRequest)
	api.PUT("/service-requests/:id/status", s.UpdateServiceRequestStatus)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer_id")
	}
	planID, err := kernel.UUIDFromString(body.PlanID)
	if err != nil {
		return respondBadRequest(ctx, "invalid plan_id")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orgID, orderID, customerID, planID, body.DeviceID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetOpenOrders handles GET /api/v1/orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOpenOrdersQuery(orgID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenOrder, len(orders))
	for i, o := range orders {
		response[i] = OpenOrder{
			ID:                    o.ID.String(),
			CustomerID:            o.CustomerID.String(),
			DeviceID:              o.DeviceID,
			PaymentReceived:       o.PaymentReceived,
			KycVerified:           o.KycVerified,
			TechnicianAssigned:    o.TechnicianAssigned,
			InstallationCompleted: o.InstallationCompleted,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReceivePayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ReceivePayment(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var body Payment
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return respondBadRequest(ctx, "invalid amount")
	}

	cmd, err := commands.NewReceivePaymentCommand(orgID, orderID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.receivePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewOrderKyc handles POST /api/v1/orders/:id/kyc.
func (s *Server) ReviewOrderKyc(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var body KycReview
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	verdict, err := order.ParseApprovalStatus(body.Verdict)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReviewOrderKycCommand(orgID, orderID, verdict)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reviewOrderKycHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTechnician handles POST /api/v1/orders/:id/assignment.
func (s *Server) AssignTechnician(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var body Assignment
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(body.TechnicianID)
	if err != nil {
		return respondBadRequest(ctx, "invalid technician_id")
	}

	cmd, err := commands.NewAssignTechnicianCommand(orgID, orderID, technicianID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveAssignment handles DELETE /api/v1/orders/:id/assignment.
func (s *Server) RemoveAssignment(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRemoveAssignmentCommand(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordTechnicianDecision handles POST /api/v1/orders/:id/decision.
func (s *Server) RecordTechnicianDecision(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var body TechnicianDecision
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordTechnicianDecisionCommand(orgID, orderID, body.Approved)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordTechnicianDecisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteInstallation handles POST /api/v1/orders/:id/completion.
func (s *Server) CompleteInstallation(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteInstallationCommand(orgID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeInstallationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return respondBadRequest(ctx, "invalid user_id")
	}

	cmd, err := commands.NewRegisterCustomerCommand(orgID, userID, body.Name, body.Email, body.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CustomerRegistered{ID: userID.String()})
}

// RegisterTechnician handles POST /api/v1/technicians.
func (s *Server) RegisterTechnician(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	var body NewTechnician
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return respondBadRequest(ctx, "invalid user_id")
	}

	technicianID := kernel.NewUUID()

	cmd, err := commands.NewRegisterTechnicianCommand(orgID, technicianID, userID, body.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TechnicianRegistered{ID: technicianID.String()})
}

// ReviewCustomerKyc handles POST /api/v1/customers/:id/kyc.
func (s *Server) ReviewCustomerKyc(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var body KycReview
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	verdict, err := kernel.ParseKycStatus(body.Verdict)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, verdict, body.Document)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reviewCustomerKycHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListAvailableTechnicians handles GET /api/v1/technicians/available.
func (s *Server) ListAvailableTechnicians(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableTechniciansQuery(orgID)
	if err != nil {
		return respondError(ctx, err)
	}

	technicians, err := s.listAvailableTechniciansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Technician, len(technicians))
	for i, t := range technicians {
		response[i] = Technician{
			ID:     t.ID.String(),
			UserID: t.UserID.String(),
			Name:   t.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReviewTechnicianOnboarding handles POST /api/v1/technicians/:id/onboarding.
func (s *Server) ReviewTechnicianOnboarding(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid technician id")
	}

	var body OnboardingReview
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	kycStatus, err := kernel.ParseKycStatus(body.KycStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReviewTechnicianOnboardingCommand(orgID, technicianID, body.IsActive, kycStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reviewTechnicianOnboardingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateServiceRequest handles POST /api/v1/service-requests.
func (s *Server) CreateServiceRequest(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	var body NewServiceRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer_id")
	}

	requestID := kernel.NewUUID()

	cmd, err := commands.NewCreateServiceRequestCommand(orgID, requestID, customerID, body.DeviceID, body.Issue)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createServiceRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ServiceRequestCreated{ID: requestID.String()})
}

// AssignServiceRequest handles POST /api/v1/service-requests/:id/assignment.
func (s *Server) AssignServiceRequest(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid service request id")
	}

	var body Assignment
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(body.TechnicianID)
	if err != nil {
		return respondBadRequest(ctx, "invalid technician_id")
	}

	cmd, err := commands.NewAssignServiceRequestCommand(orgID, requestID, technicianID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignServiceRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateServiceRequestStatus handles PUT /api/v1/service-requests/:id/status.
func (s *Server) UpdateServiceRequestStatus(ctx echo.Context) error {
	orgID, err := resolveTenant(ctx)
	if err != nil {
		return err
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid service request id")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	newStatus, err := servicerequest.ParseStatus(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateServiceRequestStatusCommand(orgID, requestID, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateServiceRequestStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
