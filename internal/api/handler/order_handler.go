package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// OrderEventDispatcher is the interface the handler uses to enqueue order
// status events.
type OrderEventDispatcher interface {
	Enqueue(event ports.OrderEventInput)
	EnqueueBatch(events []ports.OrderEventInput)
}

// OrderHandler handles the back-office order endpoints.
type OrderHandler struct {
	orders     ports.OrderService
	dispatcher OrderEventDispatcher
}

func NewOrderHandler(orders ports.OrderService, dispatcher OrderEventDispatcher) *OrderHandler {
	return &OrderHandler{orders: orders, dispatcher: dispatcher}
}

type changeOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected shipped"`
}

type orderEventRequest struct {
	OrderID   int64     `json:"order_id"  validate:"required,gt=0"`
	Status    string    `json:"status"    validate:"required,oneof=accepted rejected shipped"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source"    validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type listOrdersResponse struct {
	Data       []*domain.Order    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /api/order (administrator only).
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listOrdersResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/order [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.orders.ListOrders(c.Request().Context(), ports.OrderListInput{
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /api/order/:id (administrator only).
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Order id"
// @Success      200 {object}  domain.Order
// @Failure      404 {object}  errorResponse
// @Router       /api/order/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ChangeStatus handles PATCH /api/order/:id (administrator only).
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Order id"
// @Param        body  body      changeOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/order/{id} [patch]
func (h *OrderHandler) ChangeStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.orders.ChangeStatus(c.Request().Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ReceiveEvents handles POST /api/order/events (administrator only):
// enqueues a batch of order status events, returns 202.
//
// @Summary      Ingest order status events
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []orderEventRequest  true  "Array of order status events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/order/events [post]
func (h *OrderHandler) ReceiveEvents(c echo.Context) error {
	var reqs []orderEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.OrderEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, ports.OrderEventInput{
			OrderID:   req.OrderID,
			Status:    req.Status,
			Timestamp: req.Timestamp,
			Source:    req.Source,
		})
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}
