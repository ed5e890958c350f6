// Package events carries committed order changes out of the process: the JSON wire
// message shared by every broker, a fan-out publisher and the websocket hub that
// feeds live dashboards.
package events

import (
	"strings"
	"time"

	"logistics/internal/core/domain/model/order"
)

const OrderChangedType = "order.changed"

// OrderChangedMessage is the JSON body published for every order.ChangedEvent.
type OrderChangedMessage struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	DriverID   *string   `json:"driverId,omitempty"`
	Status     string    `json:"status"`
	Rating     *int      `json:"rating,omitempty"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewOrderChangedMessage(e order.ChangedEvent) OrderChangedMessage {
	msg := OrderChangedMessage{
		Type:       OrderChangedType,
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		Status:     e.Status.String(),
		Price:      e.Price.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.DriverID != nil {
		id := e.DriverID.String()
		msg.DriverID = &id
	}
	if e.Rating > 0 {
		rating := e.Rating
		msg.Rating = &rating
	}
	return msg
}

// RoutingKey is order.<status> in lower case, e.g. order.inprogress.
func (m OrderChangedMessage) RoutingKey() string {
	return "order." + strings.ToLower(m.Status)
}
