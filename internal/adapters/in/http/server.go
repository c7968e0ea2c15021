package http

import (
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements servers.ServerInterface on top of the order use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		logger:                   logger.With("component", "http"),
	}
}

// ListOrders godoc
//
//	@Summary	List orders in arrival order
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	false	"Only orders in this status"	Enums(pending, preparing, ready)
//	@Success	200		{array}		servers.Order
//	@Failure	422		{object}	servers.Error
//	@Router		/api/v1/orders [get]
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder godoc
//
//	@Summary	Accept a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		Idempotency-Key	header		string				false	"Replays the first order created with the same key"
//	@Param		order			body		servers.NewOrder	true	"Order"
//	@Success	201				{object}	servers.Order
//	@Failure	409				{object}	servers.Error
//	@Failure	422				{object}	servers.Error
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	draft, err := toDraft(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	key := ""
	if params.IdempotencyKey != nil {
		key = *params.IdempotencyKey
	}

	cmd, err := commands.NewCreateOrderCommand(draft, key)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(queries.NewOrderView(created)))
}

// GetOrder godoc
//
//	@Summary	Get one order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	servers.Order
//	@Failure	404	{object}	servers.Error
//	@Router		/api/v1/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	query := queries.NewGetOrderQuery(id)

	view, found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if !found {
		return orderNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrder godoc
//
//	@Summary	Replace the content of a pending order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order ID"
//	@Param		order	body		servers.NewOrder	true	"Order"
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Failure	409		{object}	servers.Error
//	@Failure	422		{object}	servers.Error
//	@Router		/api/v1/orders/{id} [put]
func (s *Server) UpdateOrder(ctx echo.Context, id string) error {
	orderID, ok := parseOrderID(id)
	if !ok {
		return orderNotFound(ctx)
	}

	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	draft, err := toDraft(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, draft)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(queries.NewOrderView(updated)))
}

// ChangeOrderStatus godoc
//
//	@Summary	Move an order forward in the kitchen lifecycle
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Order ID"
//	@Param		status	body		servers.StatusChange	true	"Target status"
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Failure	409		{object}	servers.Error
//	@Failure	422		{object}	servers.Error
//	@Router		/api/v1/orders/{id}/status [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context, id string) error {
	orderID, ok := parseOrderID(id)
	if !ok {
		return orderNotFound(ctx)
	}

	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(queries.NewOrderView(changed)))
}

// parseOrderID treats anything that is not a non-nil UUID as an unknown order.
func parseOrderID(raw string) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil || id.Validate() != nil {
		return kernel.UUID{}, false
	}
	return id, true
}
