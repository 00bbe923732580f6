// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The numeric primary key doubles as the store-assigned order sequence; the
// customer-facing identifier is kept in its own uniquely indexed column so
// both reference forms resolve with an index lookup.
type OrderDTO struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	OrderID       string `gorm:"uniqueIndex;size:64"`
	CustomerName  string
	Phone         string
	City          string `gorm:"index"`
	Address       string
	PickupTime    string
	Items         ItemsDTO `gorm:"type:jsonb"`
	TotalAmount   float64
	Status        string    `gorm:"index;size:16"`
	OrderDate     time.Time `gorm:"index"`
	StatusHistory StatusHistoryDTO `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one cart line as stored in the items JSON column.
type ItemDTO struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ItemsDTO stores the cart lines as a single jsonb column. Cart lines are
// only ever read back as a whole, so a relational child table would buy
// nothing but join cost.
type ItemsDTO []ItemDTO

func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *ItemsDTO) Scan(src any) error {
	return scanJSON(src, items)
}

// StatusChangeDTO is one status transition as stored in the history column.
type StatusChangeDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusHistoryDTO stores the transition history as a single jsonb column,
// oldest entry first.
type StatusHistoryDTO []StatusChangeDTO

func (history StatusHistoryDTO) Value() (driver.Value, error) {
	return json.Marshal(history)
}

func (history *StatusHistoryDTO) Scan(src any) error {
	return scanJSON(src, history)
}

func scanJSON(src any, dst any) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make(ItemsDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:       item.MenuItemID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	history := aggregate.History()
	historyDTOs := make(StatusHistoryDTO, 0, len(history))
	for _, change := range history {
		historyDTOs = append(historyDTOs, StatusChangeDTO{
			Status:    change.Status.String(),
			Timestamp: change.Timestamp,
		})
	}

	return OrderDTO{
		ID:            aggregate.Seq(),
		OrderID:       aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		Phone:         aggregate.Phone(),
		City:          aggregate.City(),
		Address:       aggregate.Address(),
		PickupTime:    aggregate.PickupTime(),
		Items:         itemDTOs,
		TotalAmount:   aggregate.TotalAmount(),
		Status:        aggregate.Status().String(),
		OrderDate:     aggregate.OrderDate(),
		StatusHistory: historyDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, reconstructing the full transition history.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, itemErr := order.NewItem(line.ID, line.Name, line.Price, line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.StatusHistory))
	for _, change := range dto.StatusHistory {
		changeStatus, changeErr := order.StatusFromString(change.Status)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, order.StatusChange{
			Status:    changeStatus,
			Timestamp: change.Timestamp,
		})
	}

	return order.RestoreOrder(
		dto.ID,
		id,
		dto.CustomerName, dto.Phone, dto.City, dto.Address, dto.PickupTime,
		items,
		dto.TotalAmount,
		status,
		dto.OrderDate,
		history,
	)
}
