package order_test

import (
	"testing"
	"time"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	coffee, err := order.NewItem(1, "Serados Special Blend", 220, 2)
	require.NoError(t, err)
	momo, err := order.NewItem(5, "Momo Platter", 320, 1)
	require.NoError(t, err)

	return []order.Item{coffee, momo}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewOrderID(time.Now()),
		"Ram", "9812345678", "Pokhara", "Main St", "15 minutes",
		testItems(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item, err := order.NewItem(1, "Coffee", 220, 2)

		require.NoError(t, err)
		assert.Equal(t, 1, item.MenuItemID())
		assert.Equal(t, "Coffee", item.Name())
		assert.InDelta(t, 220.0, item.Price(), 0.001)
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 440.0, item.Subtotal(), 0.001)
		require.NoError(t, item.Validate())
	})

	t.Run("zero_quantity_is_invalid", func(t *testing.T) {
		_, err := order.NewItem(1, "Coffee", 220, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_price_is_invalid", func(t *testing.T) {
		_, err := order.NewItem(1, "Coffee", -5, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_name_is_required", func(t *testing.T) {
		_, err := order.NewItem(1, "", 220, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_received", func(t *testing.T) {
		orderDate := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		id := kernel.NewOrderID(orderDate)

		o, err := order.NewOrder(id,
			"Ram", "9812345678", "Pokhara", "Main St", "15 minutes",
			testItems(t), orderDate)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, orderDate, o.OrderDate())
		assert.Equal(t, "Ram", o.CustomerName())
		assert.Equal(t, "9812345678", o.Phone())
		assert.Equal(t, "Pokhara", o.City())
		assert.Equal(t, "Main St", o.Address())
		assert.Equal(t, "15 minutes", o.PickupTime())
		assert.Len(t, o.Items(), 2)
		assert.Zero(t, o.Seq())
		require.NoError(t, o.Validate())
	})

	t.Run("total_is_computed_from_items", func(t *testing.T) {
		o := newTestOrder(t)

		// 220*2 + 320*1
		assert.InDelta(t, 760.0, o.TotalAmount(), 0.001)
	})

	t.Run("history_starts_with_received_at_order_date", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Received, history[0].Status)
		assert.Equal(t, o.OrderDate(), history[0].Timestamp)
	})

	t.Run("empty_required_fields_are_rejected", func(t *testing.T) {
		id := kernel.NewOrderID(time.Now())

		_, err := order.NewOrder(id, "", "", "", "", "", nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_items_are_rejected", func(t *testing.T) {
		id := kernel.NewOrderID(time.Now())

		_, err := order.NewOrder(id,
			"Ram", "9812345678", "Pokhara", "Main St", "15 minutes",
			[]order.Item{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_item_is_rejected", func(t *testing.T) {
		id := kernel.NewOrderID(time.Now())

		_, err := order.NewOrder(id,
			"Ram", "9812345678", "Pokhara", "Main St", "15 minutes",
			[]order.Item{{}}, time.Now())

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state_verbatim", func(t *testing.T) {
		orderDate := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
		readyAt := orderDate.Add(20 * time.Minute)
		id, err := kernel.OrderIDFromString("SER1700000000000001")
		require.NoError(t, err)

		history := []order.StatusChange{
			{Status: order.Received, Timestamp: orderDate},
			{Status: order.Preparing, Timestamp: orderDate.Add(5 * time.Minute)},
			{Status: order.Ready, Timestamp: readyAt},
		}

		o, err := order.RestoreOrder(7, id,
			"Sita", "9800000000", "Kathmandu", "Thamel", "30 minutes",
			testItems(t), 760, order.Ready, orderDate, history)

		require.NoError(t, err)
		assert.Equal(t, 7, o.Seq())
		assert.Equal(t, order.Ready, o.Status())
		assert.InDelta(t, 760.0, o.TotalAmount(), 0.001)
		assert.Equal(t, history, o.History())
	})

	t.Run("negative_total_is_rejected", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("SER1")
		require.NoError(t, err)

		_, err = order.RestoreOrder(1, id,
			"Sita", "9800000000", "Kathmandu", "Thamel", "30 minutes",
			testItems(t), -1, order.Received, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("SER1")
		require.NoError(t, err)

		_, err = order.RestoreOrder(1, id,
			"Sita", "9800000000", "Kathmandu", "Thamel", "30 minutes",
			testItems(t), 760, order.Unknown, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("advances_and_records_history", func(t *testing.T) {
		o := newTestOrder(t)
		at := o.OrderDate().Add(5 * time.Minute)

		require.NoError(t, o.ChangeStatus(order.Preparing, at))

		assert.Equal(t, order.Preparing, o.Status())
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.Preparing, history[1].Status)
		assert.Equal(t, at, history[1].Timestamp)
	})

	t.Run("same_status_twice_is_idempotent", func(t *testing.T) {
		o := newTestOrder(t)
		at := o.OrderDate().Add(5 * time.Minute)

		require.NoError(t, o.ChangeStatus(order.Preparing, at))
		require.NoError(t, o.ChangeStatus(order.Preparing, at.Add(time.Minute)))

		assert.Equal(t, order.Preparing, o.Status())
		assert.Len(t, o.History(), 2)
	})

	t.Run("regression_is_permitted", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed, o.OrderDate().Add(time.Hour)))
		require.NoError(t, o.ChangeStatus(order.Received, o.OrderDate().Add(2*time.Hour)))

		assert.Equal(t, order.Received, o.Status())
	})

	t.Run("value_outside_the_set_is_rejected_and_leaves_status_unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Status(42), time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, order.Received, o.Status())
		assert.Len(t, o.History(), 1)
	})
}

func TestOrder_AssignSeq(t *testing.T) {
	t.Run("assigns_once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignSeq(3))
		assert.Equal(t, 3, o.Seq())

		require.ErrorIs(t, o.AssignSeq(4), errs.ErrValueIsInvalid)
		assert.Equal(t, 3, o.Seq())
	})

	t.Run("rejects_non_positive_seq", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.AssignSeq(0), errs.ErrValueIsInvalid)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
