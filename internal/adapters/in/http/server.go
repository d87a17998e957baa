// Package http is the inbound REST adapter. It binds requests into
// commands and queries and owns the error-to-status mapping.
package http

import (
	"context"
	"net/http"
	"strconv"

	"bottleshop/internal/core/application/usecases/commands"
	"bottleshop/internal/core/application/usecases/queries"
	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// accountFinder is the read-side account lookup the login handler needs.
type accountFinder interface {
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// Server wires the REST routes to the application use cases.
type Server struct {
	registerAccountHandler  commands.RegisterAccountCommandHandler
	verifyAccountHandler    commands.VerifyAccountCommandHandler
	sendOtpHandler          commands.SendOtpCommandHandler
	verifyOtpHandler        commands.VerifyOtpCommandHandler
	createProductHandler    commands.CreateProductCommandHandler
	updateProductHandler    commands.UpdateProductCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	vendorDecisionHandler   commands.VendorDecisionCommandHandler
	handOverItemHandler     commands.HandOverItemCommandHandler
	courierDecisionHandler  commands.CourierDecisionCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	updatePaymentHandler    commands.UpdatePaymentCommandHandler

	getProductsHandler        queries.GetProductsQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getVendorOrdersHandler    queries.GetVendorOrdersQueryHandler
	getCourierOrdersHandler   queries.GetCourierOrdersQueryHandler
	getPendingAccountsHandler queries.GetPendingAccountsQueryHandler

	accounts accountFinder
	tokens   *TokenIssuer
	files    *FileStore
}

// ServerParams carries the dependencies of NewServer.
type ServerParams struct {
	RegisterAccountHandler  commands.RegisterAccountCommandHandler
	VerifyAccountHandler    commands.VerifyAccountCommandHandler
	SendOtpHandler          commands.SendOtpCommandHandler
	VerifyOtpHandler        commands.VerifyOtpCommandHandler
	CreateProductHandler    commands.CreateProductCommandHandler
	UpdateProductHandler    commands.UpdateProductCommandHandler
	PlaceOrderHandler       commands.PlaceOrderCommandHandler
	VendorDecisionHandler   commands.VendorDecisionCommandHandler
	HandOverItemHandler     commands.HandOverItemCommandHandler
	CourierDecisionHandler  commands.CourierDecisionCommandHandler
	CompleteDeliveryHandler commands.CompleteDeliveryCommandHandler
	UpdatePaymentHandler    commands.UpdatePaymentCommandHandler

	GetProductsHandler        queries.GetProductsQueryHandler
	GetCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	GetVendorOrdersHandler    queries.GetVendorOrdersQueryHandler
	GetCourierOrdersHandler   queries.GetCourierOrdersQueryHandler
	GetPendingAccountsHandler queries.GetPendingAccountsQueryHandler

	Accounts accountFinder
	Tokens   *TokenIssuer
	Files    *FileStore
}

// NewServer creates a new HTTP server from its dependencies.
func NewServer(params ServerParams) *Server {
	return &Server{
		registerAccountHandler:    params.RegisterAccountHandler,
		verifyAccountHandler:      params.VerifyAccountHandler,
		sendOtpHandler:            params.SendOtpHandler,
		verifyOtpHandler:          params.VerifyOtpHandler,
		createProductHandler:      params.CreateProductHandler,
		updateProductHandler:      params.UpdateProductHandler,
		placeOrderHandler:         params.PlaceOrderHandler,
		vendorDecisionHandler:     params.VendorDecisionHandler,
		handOverItemHandler:       params.HandOverItemHandler,
		courierDecisionHandler:    params.CourierDecisionHandler,
		completeDeliveryHandler:   params.CompleteDeliveryHandler,
		updatePaymentHandler:      params.UpdatePaymentHandler,
		getProductsHandler:        params.GetProductsHandler,
		getCustomerOrdersHandler:  params.GetCustomerOrdersHandler,
		getVendorOrdersHandler:    params.GetVendorOrdersHandler,
		getCourierOrdersHandler:   params.GetCourierOrdersHandler,
		getPendingAccountsHandler: params.GetPendingAccountsHandler,
		accounts:                  params.Accounts,
		tokens:                    params.Tokens,
		files:                     params.Files,
	}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.Static("/uploads", s.files.Dir())

	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/otp/send", s.SendOtp)
	api.POST("/auth/otp/verify", s.VerifyOtp)

	api.GET("/products", s.GetProducts)

	authed := api.Group("", s.tokens.Middleware())

	vendor := authed.Group("", requireRole(account.RoleVendor))
	vendor.POST("/products", s.CreateProduct)
	vendor.PUT("/products/:productID", s.UpdateProduct)
	vendor.GET("/vendor/products", s.GetVendorProducts)
	vendor.GET("/vendor/orders", s.GetVendorOrders)
	vendor.PUT("/orders/:orderID/items/:itemID/accept", s.AcceptItem)
	vendor.PUT("/orders/:orderID/items/:itemID/reject", s.RejectItem)
	vendor.PUT("/orders/:orderID/items/:itemID/handover", s.HandOverItem)

	customer := authed.Group("", requireRole(account.RoleCustomer))
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.PUT("/orders/:orderID/payment", s.UpdatePayment)

	courier := authed.Group("", requireRole(account.RoleCourier))
	courier.GET("/courier/orders", s.GetCourierOrders)
	courier.PUT("/orders/:orderID/items/:itemID/courier-accept", s.CourierAcceptItem)
	courier.PUT("/orders/:orderID/items/:itemID/courier-reject", s.CourierRejectItem)
	courier.PUT("/orders/:orderID/items/:itemID/deliver", s.DeliverItem)

	admin := authed.Group("", requireRole(account.RoleAdmin))
	admin.GET("/admin/accounts/pending", s.GetPendingAccounts)
	admin.PUT("/admin/accounts/:accountID/verify", s.VerifyAccount)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/auth/register. The body is multipart so
// vendor and courier applicants can attach verification documents.
func (s *Server) Register(ctx echo.Context) error {
	role, err := account.RoleFromString(ctx.FormValue("role"))
	if err != nil {
		return badRequest(ctx, err)
	}
	if role == account.RoleAdmin {
		return badRequest(ctx, errs.NewValueIsInvalidError("admin accounts cannot self register"))
	}

	documents, err := s.saveDocuments(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID,
		role,
		ctx.FormValue("name"),
		ctx.FormValue("email"),
		ctx.FormValue("phone"),
		ctx.FormValue("password"),
		documents,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login. Lookup and password failures both
// come back as the same 401 so the reply does not reveal which one it was.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	acc, err := s.accounts.GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		return s.invalidCredentials(ctx)
	}

	if err = acc.CheckPassword(request.Password); err != nil {
		return s.invalidCredentials(ctx)
	}

	token, err := s.tokens.Issue(acc.ID(), acc.Role())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:     token,
		AccountID: acc.ID().String(),
		Role:      acc.Role().String(),
	})
}

// SendOtp handles POST /api/v1/auth/otp/send.
func (s *Server) SendOtp(ctx echo.Context) error {
	var request otpSendRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendOtpCommand(request.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.sendOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// VerifyOtp handles POST /api/v1/auth/otp/verify.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	var request otpVerifyRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVerifyOtpCommand(request.Email, request.Code, request.NewPassword)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.verifyOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetProducts handles GET /api/v1/products - the public storefront catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// GetVendorProducts handles GET /api/v1/vendor/products - the caller's own
// catalog entries.
func (s *Server) GetVendorProducts(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	query, err := queries.NewGetVendorProductsQuery(caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// CreateProduct handles POST /api/v1/products. Multipart so the listing can
// carry a product image.
func (s *Server) CreateProduct(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	price, stock, err := parseProductNumbers(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	imageURL, err := s.saveOptionalFile(ctx, "image")
	if err != nil {
		return badRequest(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		caller.AccountID,
		ctx.FormValue("name"),
		ctx.FormValue("description"),
		imageURL,
		price,
		stock,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:productID.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	price, stock, err := parseProductNumbers(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	imageURL, err := s.saveOptionalFile(ctx, "image")
	if err != nil {
		return badRequest(ctx, err)
	}
	if imageURL == "" {
		imageURL = ctx.FormValue("image_url")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		caller.AccountID,
		ctx.FormValue("name"),
		ctx.FormValue("description"),
		imageURL,
		price,
		stock,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, err)
		}

		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		caller.AccountID,
		lines,
		request.Street,
		request.City,
		request.Postcode,
		request.Phone,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdatePayment handles PUT /api/v1/orders/:orderID/payment. Multipart so
// online payments can attach a proof image.
func (s *Server) UpdatePayment(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	outcome, err := paymentOutcomeFromString(ctx.FormValue("outcome"))
	if err != nil {
		return badRequest(ctx, err)
	}

	proofURL, err := s.saveOptionalFile(ctx, "proof")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentCommand(
		orderID,
		caller.AccountID,
		outcome,
		proofURL,
		ctx.FormValue("transaction_id"),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updatePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetVendorOrders handles GET /api/v1/vendor/orders.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	query, err := queries.NewGetVendorOrdersQuery(caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AcceptItem handles PUT /api/v1/orders/:orderID/items/:itemID/accept.
func (s *Server) AcceptItem(ctx echo.Context) error {
	return s.vendorDecision(ctx, commands.DecisionAccept)
}

// RejectItem handles PUT /api/v1/orders/:orderID/items/:itemID/reject.
func (s *Server) RejectItem(ctx echo.Context) error {
	return s.vendorDecision(ctx, commands.DecisionReject)
}

func (s *Server) vendorDecision(ctx echo.Context, decision commands.Decision) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	orderID, itemID, err := itemParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVendorDecisionCommand(orderID, itemID, caller.AccountID, decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.vendorDecisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// HandOverItem handles PUT /api/v1/orders/:orderID/items/:itemID/handover.
func (s *Server) HandOverItem(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	orderID, itemID, err := itemParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewHandOverItemCommand(orderID, itemID, caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handOverItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCourierOrders handles GET /api/v1/courier/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	query, err := queries.NewGetCourierOrdersQuery(caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CourierAcceptItem handles PUT /api/v1/orders/:orderID/items/:itemID/courier-accept.
func (s *Server) CourierAcceptItem(ctx echo.Context) error {
	return s.courierDecision(ctx, commands.DecisionAccept)
}

// CourierRejectItem handles PUT /api/v1/orders/:orderID/items/:itemID/courier-reject.
func (s *Server) CourierRejectItem(ctx echo.Context) error {
	return s.courierDecision(ctx, commands.DecisionReject)
}

func (s *Server) courierDecision(ctx echo.Context, decision commands.Decision) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	orderID, itemID, err := itemParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCourierDecisionCommand(orderID, itemID, caller.AccountID, decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.courierDecisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliverItem handles PUT /api/v1/orders/:orderID/items/:itemID/deliver.
func (s *Server) DeliverItem(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	orderID, itemID, err := itemParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, itemID, caller.AccountID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingAccounts handles GET /api/v1/admin/accounts/pending.
func (s *Server) GetPendingAccounts(ctx echo.Context) error {
	accounts, err := s.getPendingAccountsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingAccountsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPendingAccountResponses(accounts))
}

// VerifyAccount handles PUT /api/v1/admin/accounts/:accountID/verify.
func (s *Server) VerifyAccount(ctx echo.Context) error {
	caller, ok := callerOf(ctx)
	if !ok {
		return s.invalidCredentials(ctx)
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("accountID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		Outcome string `json:"outcome"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	outcome, err := verificationOutcomeFromString(request.Outcome)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVerifyAccountCommand(caller.AccountID, accountID, outcome)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.verifyAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) invalidCredentials(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "invalid credentials",
	})
}

// saveDocuments stores every "documents" part of a multipart registration.
func (s *Server) saveDocuments(ctx echo.Context) ([]string, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var documents []string
	for _, file := range form.File["documents"] {
		path, err := s.files.Save(file)
		if err != nil {
			return nil, err
		}
		documents = append(documents, path)
	}

	return documents, nil
}

// saveOptionalFile stores a single named multipart file when present.
func (s *Server) saveOptionalFile(ctx echo.Context, field string) (string, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return "", nil
	}

	return s.files.Save(file)
}

func itemParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, itemID, nil
}

func parseProductNumbers(ctx echo.Context) (kernel.Money, int, error) {
	amount, err := strconv.ParseInt(ctx.FormValue("price"), 10, 64)
	if err != nil {
		return kernel.Money{}, 0, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	price, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Money{}, 0, err
	}

	stock, err := strconv.Atoi(ctx.FormValue("stock"))
	if err != nil {
		return kernel.Money{}, 0, errs.NewValueIsInvalidErrorWithCause("stock", err)
	}

	return price, stock, nil
}

func paymentOutcomeFromString(s string) (order.PaymentStatus, error) {
	switch s {
	case "paid":
		return order.PaymentPaid, nil
	case "cash_on_delivery":
		return order.PaymentCashOnDelivery, nil
	default:
		return order.PaymentStatus(0), errs.NewValueIsInvalidError(
			"outcome must be paid or cash_on_delivery")
	}
}

func verificationOutcomeFromString(s string) (account.Verification, error) {
	switch s {
	case "verified":
		return account.Verified, nil
	case "rejected":
		return account.VerificationRejected, nil
	default:
		return account.Verification(0), errs.NewValueIsInvalidError(
			"outcome must be verified or rejected")
	}
}
