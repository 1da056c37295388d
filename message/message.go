// Package message holds the message type handed to the consumer listeners.
package message

import (
	"fmt"
	"strconv"
	"strings"
)

// Message the message delivered to the listeners
type Message struct {
	Topic         string
	MsgID         string
	Body          []byte
	Properties    map[string]string
	Flag          int32
	BornTimestamp int64
}

func (m *Message) makeSurePropertiesInst() {
	if m.Properties == nil {
		m.Properties = map[string]string{}
	}
}

// PutProperty update property
func (m *Message) PutProperty(k, v string) {
	m.makeSurePropertiesInst()
	m.Properties[k] = v
}

// ClearProperty remove the property
func (m *Message) ClearProperty(k string) {
	delete(m.Properties, k)
}

// GetProperty get the property by the specified key
func (m *Message) GetProperty(k string) string {
	return m.Properties[k]
}

// GetTags return the property of the tags
func (m *Message) GetTags() string {
	return m.Properties[PropertyTags]
}

// SetTags set the property of the tags
func (m *Message) SetTags(tags string) {
	m.makeSurePropertiesInst()
	m.Properties[PropertyTags] = tags
}

// SetKey update the property of the keys
func (m *Message) SetKey(keys string) {
	m.makeSurePropertiesInst()
	m.Properties[PropertyKeys] = keys
}

// SetKeys update the property of the keys with multi-value, split with space
func (m *Message) SetKeys(ks []string) {
	m.makeSurePropertiesInst()
	m.Properties[PropertyKeys] = strings.Join(ks, KeySep)
}

// GetKeys return the property of the keys
func (m *Message) GetKeys() string {
	return m.Properties[PropertyKeys]
}

// GetDelayTimeLevel returns the property of the delay time level
func (m *Message) GetDelayTimeLevel() int {
	l := m.Properties[PropertyDelayTimeLevel]
	if l == "" {
		return 0
	}
	i, _ := strconv.Atoi(l) // IGNORE
	return i
}

// SetDelayTimeLevel update the property of the delay time level
func (m *Message) SetDelayTimeLevel(l int) {
	m.makeSurePropertiesInst()
	m.Properties[PropertyDelayTimeLevel] = strconv.Itoa(l)
}

func (m *Message) String() string {
	return fmt.Sprintf(
		"Message [topic=%s, msgId=%s, flag=%d, properties=%v, body len=%d]",
		m.Topic, m.MsgID, m.Flag, m.Properties, len(m.Body),
	)
}
