package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onsmq/ons-client-go/message"
)

type fakeOrderListener struct {
	consumed []string
	ret      OrderAction
}

func (l *fakeOrderListener) Consume(m *message.Message, ctx *ConsumeOrderContext) OrderAction {
	l.consumed = append(l.consumed, m.Topic)
	return l.ret
}

type fakeOrderConsumer struct {
	started  bool
	listener OrderListener
}

func (c *fakeOrderConsumer) Start() error    { c.started = true; return nil }
func (c *fakeOrderConsumer) Shutdown() error { c.started = false; return nil }
func (c *fakeOrderConsumer) Subscribe(topic, expr string, listener OrderListener) error {
	c.listener = listener
	return nil
}
func (c *fakeOrderConsumer) RegisterMessageListener(listener OrderListener) {
	c.listener = listener
}

// both interface generations are satisfiable by one implementation
var (
	_ OrderConsumer          = (*fakeOrderConsumer)(nil)
	_ OrderListenerRegistrar = (*fakeOrderConsumer)(nil)
)

func TestOrderAction(t *testing.T) {
	assert.Equal(t, "Success", OrderSuccess.String())
	assert.Equal(t, "Suspend", OrderSuspend.String())
	assert.Panics(t, func() { _ = OrderAction(9).String() })
}

func TestOrderConsumerContract(t *testing.T) {
	c, l := &fakeOrderConsumer{}, &fakeOrderListener{ret: OrderSuspend}

	assert.Nil(t, c.Start())
	assert.Nil(t, c.Subscribe("t", "*", l))

	a := c.listener.Consume(&message.Message{Topic: "t"}, &ConsumeOrderContext{Topic: "t"})
	assert.Equal(t, OrderSuspend, a)
	assert.Equal(t, []string{"t"}, l.consumed)

	assert.Nil(t, c.Shutdown())
	assert.False(t, c.started)
}
