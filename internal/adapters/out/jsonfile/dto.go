package jsonfile

import (
	"time"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
)

// orderRecord is the stored form of an order in the flat-file JSON store.
// The field names match the wire contract, so the file doubles as a readable
// export of the order book.
type orderRecord struct {
	ID            int                  `json:"id"`
	OrderID       string               `json:"order_id"`
	CustomerName  string               `json:"customer_name"`
	Phone         string               `json:"phone"`
	City          string               `json:"city"`
	Address       string               `json:"address"`
	PickupTime    string               `json:"pickup_time"`
	Items         []itemRecord         `json:"items"`
	TotalAmount   float64              `json:"total_amount"`
	Status        string               `json:"status"`
	OrderDate     time.Time            `json:"order_date"`
	StatusHistory []statusChangeRecord `json:"status_history"`
}

type itemRecord struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type statusChangeRecord struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func recordFromDomain(aggregate *order.Order) orderRecord {
	items := aggregate.Items()
	itemRecords := make([]itemRecord, 0, len(items))
	for _, item := range items {
		itemRecords = append(itemRecords, itemRecord{
			ID:       item.MenuItemID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	history := aggregate.History()
	historyRecords := make([]statusChangeRecord, 0, len(history))
	for _, change := range history {
		historyRecords = append(historyRecords, statusChangeRecord{
			Status:    change.Status.String(),
			Timestamp: change.Timestamp,
		})
	}

	return orderRecord{
		ID:            aggregate.Seq(),
		OrderID:       aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		Phone:         aggregate.Phone(),
		City:          aggregate.City(),
		Address:       aggregate.Address(),
		PickupTime:    aggregate.PickupTime(),
		Items:         itemRecords,
		TotalAmount:   aggregate.TotalAmount(),
		Status:        aggregate.Status().String(),
		OrderDate:     aggregate.OrderDate(),
		StatusHistory: historyRecords,
	}
}

func recordToDomain(record orderRecord) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(record.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(record.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(record.Items))
	for _, line := range record.Items {
		item, err := order.NewItem(line.ID, line.Name, line.Price, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(record.StatusHistory))
	for _, change := range record.StatusHistory {
		changeStatus, err := order.StatusFromString(change.Status)
		if err != nil {
			return nil, err
		}
		history = append(history, order.StatusChange{
			Status:    changeStatus,
			Timestamp: change.Timestamp,
		})
	}

	return order.RestoreOrder(
		record.ID,
		id,
		record.CustomerName, record.Phone, record.City, record.Address,
		record.PickupTime,
		items,
		record.TotalAmount,
		status,
		record.OrderDate,
		history,
	)
}
