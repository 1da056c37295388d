// Package consumer defines the consuming capability surfaces of the client,
// the delivery runtime implementing them lives behind the session layer.
package consumer

import (
	"strconv"

	"github.com/onsmq/ons-client-go/message"
)

// OrderAction the result the order listener reports for one message
type OrderAction int8

func (a OrderAction) String() string {
	if a < 0 || int(a) >= len(orderActionDescs) {
		panic("BUG:unknown order action:" + strconv.Itoa(int(a)))
	}
	return orderActionDescs[a]
}

var orderActionDescs = []string{"Success", "Suspend"}

const (
	// OrderSuccess the message is consumed, the next one may be delivered
	OrderSuccess OrderAction = iota
	// OrderSuspend the consuming failed, the queue is suspended and the
	// message is delivered again later
	OrderSuspend
)

// ConsumeOrderContext the per-delivery context of the ordered consuming
type ConsumeOrderContext struct {
	Topic      string
	QueueID    int
	AutoCommit bool
}

// OrderListener consumes the messages of one queue in the stored order, it
// is invoked by the delivery runtime
type OrderListener interface {
	Consume(m *message.Message, ctx *ConsumeOrderContext) OrderAction
}

// OrderConsumer consumes the messages of the subscribed topics keeping the
// stored order, the subscriptions carry the listener inline
type OrderConsumer interface {
	Start() error
	Shutdown() error
	Subscribe(topic, expr string, listener OrderListener) error
}

// OrderListenerRegistrar the registration surface of the older interface
// generation, where the listener is registered apart from the subscription.
// An implementation may provide it next to OrderConsumer.
type OrderListenerRegistrar interface {
	RegisterMessageListener(listener OrderListener)
}
