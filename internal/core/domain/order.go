package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderAccepted OrderStatus = "accepted"
	OrderRejected OrderStatus = "rejected"
	OrderShipped  OrderStatus = "shipped"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAccepted, OrderRejected},
	OrderAccepted: {OrderShipped},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order freezes a cart into a purchase. Exactly one order per cart.
type Order struct {
	ID        int64       `json:"order_id" bson:"order_id"`
	CartID    int64       `json:"cart_id" bson:"cart_id"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	Status    OrderStatus `json:"status" bson:"status"`
}

// OrderEvent records a processed status update in the audit trail.
type OrderEvent struct {
	OrderID   int64
	Status    OrderStatus
	Timestamp time.Time
	Source    string
}
