package http

import (
	"time"

	"serados/internal/core/application/usecases/queries"
	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
)

// submitOrderRequest is the body of POST /api/order, exactly as the ordering
// page sends it.
type submitOrderRequest struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	City       string            `json:"city"`
	Location   string            `json:"location"`
	PickupTime string            `json:"pickupTime"`
	Items      []submitOrderItem `json:"items"`
	Total      float64           `json:"total"`
}

type submitOrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// orderResponse is the wire form of a stored order, shared by the admin
// listing, the single-order lookup and the detailed tracking view.
type orderResponse struct {
	ID            int                    `json:"id"`
	OrderID       string                 `json:"order_id"`
	CustomerName  string                 `json:"customer_name"`
	Phone         string                 `json:"phone"`
	City          string                 `json:"city"`
	Address       string                 `json:"address"`
	PickupTime    string                 `json:"pickup_time"`
	Items         []submitOrderItem      `json:"items"`
	TotalAmount   float64                `json:"total_amount"`
	Status        string                 `json:"status"`
	OrderDate     time.Time              `json:"order_date"`
	StatusHistory []statusChangeResponse `json:"status_history"`
}

type statusChangeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type trackOrderResponse struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	StatusText string    `json:"status_text"`
	OrderDate  time.Time `json:"order_date"`
}

type trackOrderDetailsResponse struct {
	orderResponse
	StatusTimeline []timelineStageResponse `json:"status_timeline"`
}

type timelineStageResponse struct {
	Status    string     `json:"status"`
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	Active    bool       `json:"active"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type statsResponse struct {
	TotalOrders   int            `json:"total_orders"`
	TotalRevenue  float64        `json:"total_revenue"`
	AvgOrderValue float64        `json:"avg_order_value"`
	StatusCounts  map[string]int `json:"status_counts"`
	CityCounts    map[string]int `json:"city_counts"`
}

type dailyRevenueResponse struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type cityResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func orderToResponse(aggregate *order.Order) orderResponse {
	items := aggregate.Items()
	itemResponses := make([]submitOrderItem, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, submitOrderItem{
			ID:       item.MenuItemID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	history := aggregate.History()
	historyResponses := make([]statusChangeResponse, 0, len(history))
	for _, change := range history {
		historyResponses = append(historyResponses, statusChangeResponse{
			Status:    change.Status.String(),
			Timestamp: change.Timestamp,
		})
	}

	return orderResponse{
		ID:            aggregate.Seq(),
		OrderID:       aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		Phone:         aggregate.Phone(),
		City:          aggregate.City(),
		Address:       aggregate.Address(),
		PickupTime:    aggregate.PickupTime(),
		Items:         itemResponses,
		TotalAmount:   aggregate.TotalAmount(),
		Status:        aggregate.Status().String(),
		OrderDate:     aggregate.OrderDate(),
		StatusHistory: historyResponses,
	}
}

func timelineToResponse(stages []order.TimelineStage) []timelineStageResponse {
	responses := make([]timelineStageResponse, 0, len(stages))
	for _, stage := range stages {
		response := timelineStageResponse{
			Status:    stage.Status.String(),
			Label:     stage.Label,
			Completed: stage.Completed,
			Active:    stage.Active,
		}
		if !stage.Timestamp.IsZero() {
			timestamp := stage.Timestamp
			response.Timestamp = &timestamp
		}
		responses = append(responses, response)
	}
	return responses
}

func trackToResponse(summary queries.TrackOrderResponse) trackOrderResponse {
	return trackOrderResponse{
		OrderID:    summary.OrderID,
		Status:     summary.Status,
		StatusText: summary.StatusText,
		OrderDate:  summary.OrderDate,
	}
}

func statsToResponse(stats ports.OrderStats) statsResponse {
	return statsResponse{
		TotalOrders:   stats.TotalOrders,
		TotalRevenue:  stats.TotalRevenue,
		AvgOrderValue: stats.AvgOrderValue,
		StatusCounts:  stats.StatusCounts,
		CityCounts:    stats.CityCounts,
	}
}
