package domain

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	Pending    OrderStatus = "pending"
	Processing OrderStatus = "processing"
	Completed  OrderStatus = "completed"
	Cancelled  OrderStatus = "cancelled"
	Shipped    OrderStatus = "shipped"
	Delivered  OrderStatus = "delivered"
)

func OrderStatuses() []OrderStatus {
	return []OrderStatus{Pending, Processing, Completed, Cancelled, Shipped, Delivered}
}

// CreatedAtLayout formats the creation time of an order in UTC with milliseconds,
// e.g. 2025-11-07T18:18:08.792Z.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Order is placed by a user. UserID and the ProductID of the items are not checked to exist.
// Total is not derived from the items.
type Order struct {
	ID        ID          `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt string      `json:"createdAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewOrder creates an Order. Total defaults to 0 and Status to Pending.
type NewOrder struct {
	UserID string       `json:"userId"`
	Items  []OrderItem  `json:"items"`
	Total  *float64     `json:"total,omitempty"`
	Status *OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed cancelled shipped delivered"` //nolint:lll
}

func (in NewOrder) Build(id ID, now time.Time) Order {
	order := Order{
		ID:        id,
		UserID:    in.UserID,
		Items:     cloneItems(in.Items),
		Total:     0.0,
		Status:    Pending,
		CreatedAt: now.UTC().Format(CreatedAtLayout),
	}

	set(&order.Total, in.Total)
	set(&order.Status, in.Status)

	return order
}

// OrderPatch changes all fields that are not nil. The ID and CreatedAt of an order never change.
type OrderPatch struct {
	UserID *string      `json:"userId,omitempty"`
	Items  []OrderItem  `json:"items,omitempty"`
	Total  *float64     `json:"total,omitempty"`
	Status *OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed cancelled shipped delivered"` //nolint:lll
}

func (p OrderPatch) Apply(order Order) Order {
	set(&order.UserID, p.UserID)
	set(&order.Total, p.Total)
	set(&order.Status, p.Status)

	if p.Items != nil {
		order.Items = cloneItems(p.Items)
	}

	return order
}

func cloneItems(items []OrderItem) []OrderItem {
	if items == nil {
		return []OrderItem{}
	}

	return slices.Clone(items)
}

// OrderSeed returns the orders every new collection starts with.
func OrderSeed() []Order {
	const createdAt = "2025-11-07T18:18:08.792Z"

	return []Order{
		{
			ID:        "1",
			UserID:    "1",
			Items:     []OrderItem{{ProductID: "1", Quantity: 2, Price: 3500.0}},
			Total:     7000.0,
			Status:    Pending,
			CreatedAt: createdAt,
		},
		{
			ID:        "2",
			UserID:    "2",
			Items:     []OrderItem{{ProductID: "2", Quantity: 1, Price: 150.0}},
			Total:     150.0,
			Status:    Completed,
			CreatedAt: createdAt,
		},
		{
			ID:        "3",
			UserID:    "1",
			Items:     []OrderItem{{ProductID: "3", Quantity: 1, Price: 450.0}},
			Total:     450.0,
			Status:    Processing,
			CreatedAt: createdAt,
		},
	}
}
