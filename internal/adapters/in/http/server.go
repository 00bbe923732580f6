// Package http exposes the ordering, admin and tracking API over HTTP.
// It binds requests, dispatches to command and query handlers and maps
// domain errors onto the status codes the web client expects.
package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"serados/internal/core/application/usecases/commands"
	"serados/internal/core/application/usecases/queries"
	"serados/internal/core/ports"
	"serados/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler  commands.SubmitOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	statsHandler        queries.GetOrderStatsQueryHandler
	dailyRevenueHandler queries.GetDailyRevenueQueryHandler
	exportOrdersHandler queries.ExportOrdersQueryHandler
	trackOrderHandler   queries.TrackOrderQueryHandler
	trackDetailsHandler queries.TrackOrderDetailsQueryHandler

	menuCatalog ports.MenuCatalog
}

// NewServer creates an HTTP server with the required command and query
// handlers and the menu catalog.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	statsHandler queries.GetOrderStatsQueryHandler,
	dailyRevenueHandler queries.GetDailyRevenueQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	trackDetailsHandler queries.TrackOrderDetailsQueryHandler,
	menuCatalog ports.MenuCatalog,
) *Server {
	return &Server{
		submitOrderHandler:  submitOrderHandler,
		updateStatusHandler: updateStatusHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		statsHandler:        statsHandler,
		dailyRevenueHandler: dailyRevenueHandler,
		exportOrdersHandler: exportOrdersHandler,
		trackOrderHandler:   trackOrderHandler,
		trackDetailsHandler: trackDetailsHandler,
		menuCatalog:         menuCatalog,
	}
}

// RegisterRoutes mounts the API on the given echo instance. Static order
// routes are registered before the parameterized /:id lookup so "stats",
// "daily-revenue" and "export" are never resolved as order references.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/menu", s.GetMenu)
	e.POST("/api/order", s.SubmitOrder)

	e.GET("/api/orders", s.ListOrders)
	e.GET("/api/orders/stats", s.GetStats)
	e.GET("/api/orders/daily-revenue", s.GetDailyRevenue)
	e.GET("/api/orders/export/csv", s.ExportOrdersCSV)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)

	e.GET("/api/track-order/:orderId", s.TrackOrder)
	e.GET("/api/track-order-details/:orderId", s.TrackOrderDetails)

	e.GET("/api/cities", s.GetCities)
}

// GetMenu handles GET /api/menu - serves the café menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	m, err := s.menuCatalog.Menu(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load menu"})
	}

	return ctx.JSON(http.StatusOK, m)
}

// SubmitOrder handles POST /api/order - submits a new order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request submitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{Error: "Invalid request body"})
	}

	items := make([]commands.SubmitOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.SubmitOrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewSubmitOrderCommand(
		request.Name, request.Phone, request.City, request.Location,
		request.PickupTime, items, request.Total,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
	}

	orderID, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, failureResponse{Error: "Failed to save order"})
	}

	return ctx.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "Order received successfully!",
		OrderID: orderID.String(),
	})
}

// ListOrders handles GET /api/orders - the latest orders for the admin view.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(0))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load orders"})
	}

	response := make([]orderResponse, 0, len(orders))
	for _, aggregate := range orders {
		response = append(response, orderToResponse(aggregate))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - a single order by reference.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load order"})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - moves an order to a
// new fulfillment status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
	}

	if _, err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
		case errors.Is(err, errs.ErrInvalidStatus):
			return ctx.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
		default:
			return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to update order"})
		}
	}

	return ctx.JSON(http.StatusOK, successResponse{Success: true, Message: "Order status updated"})
}

// GetStats handles GET /api/orders/stats - the admin dashboard rollup.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.statsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load statistics"})
	}

	return ctx.JSON(http.StatusOK, statsToResponse(stats))
}

// GetDailyRevenue handles GET /api/orders/daily-revenue - per-day rollups,
// newest day first.
func (s *Server) GetDailyRevenue(ctx echo.Context) error {
	rollup, err := s.dailyRevenueHandler.Handle(ctx.Request().Context(), queries.NewGetDailyRevenueQuery(0))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load daily revenue"})
	}

	response := make([]dailyRevenueResponse, 0, len(rollup))
	for _, row := range rollup {
		response = append(response, dailyRevenueResponse{
			Day:     row.Day,
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExportOrdersCSV handles GET /api/orders/export/csv - the full order book as
// a CSV attachment, oldest order first.
func (s *Server) ExportOrdersCSV(ctx echo.Context) error {
	orders, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), queries.NewExportOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to export data"})
	}

	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err = writer.Write([]string{
		"Order ID", "Customer Name", "Phone", "City", "Items",
		"Total Amount", "Status", "Order Date",
	}); err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to export data"})
	}

	for _, aggregate := range orders {
		lines := make([]string, 0, len(aggregate.Items()))
		for _, item := range aggregate.Items() {
			lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name(), item.Quantity()))
		}

		if err = writer.Write([]string{
			aggregate.ID().String(),
			aggregate.CustomerName(),
			aggregate.Phone(),
			aggregate.City(),
			strings.Join(lines, "; "),
			fmt.Sprintf("%g", aggregate.TotalAmount()),
			aggregate.Status().String(),
			aggregate.OrderDate().Format("2006-01-02T15:04:05Z07:00"),
		}); err != nil {
			return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to export data"})
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to export data"})
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="serados_orders.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", []byte(builder.String()))
}

// TrackOrder handles GET /api/track-order/:orderId - the customer-facing
// status summary.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	summary, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load order"})
	}

	return ctx.JSON(http.StatusOK, trackToResponse(summary))
}

// TrackOrderDetails handles GET /api/track-order-details/:orderId - the full
// order plus the derived timeline.
func (s *Server) TrackOrderDetails(ctx echo.Context) error {
	query, err := queries.NewTrackOrderDetailsQuery(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	details, err := s.trackDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load order"})
	}

	return ctx.JSON(http.StatusOK, trackOrderDetailsResponse{
		orderResponse:  orderToResponse(details.Order),
		StatusTimeline: timelineToResponse(details.Timeline),
	})
}

// GetCities handles GET /api/cities - the static city dropdown list.
func (s *Server) GetCities(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, []cityResponse{
		{ID: 1, Name: "Bhairahawa"},
		{ID: 2, Name: "Kathmandu"},
		{ID: 3, Name: "Pokhara"},
		{ID: 4, Name: "Mustang"},
		{ID: 5, Name: "Butwal"},
	})
}
