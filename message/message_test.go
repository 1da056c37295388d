package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	m := &Message{}
	m.PutProperty("k", "v")
	assert.Equal(t, "v", m.GetProperty("k"))

	m.ClearProperty("k")
	assert.Equal(t, "", m.GetProperty("k"))

	m.SetTags("t1")
	assert.Equal(t, "t1", m.GetTags())

	m.SetKey("k1")
	assert.Equal(t, "k1", m.GetKeys())

	m.SetKeys([]string{"k1", "k2"})
	assert.Equal(t, "k1 k2", m.GetKeys())
}

func TestDelayTimeLevel(t *testing.T) {
	m := &Message{}
	assert.Equal(t, 0, m.GetDelayTimeLevel())

	m.SetDelayTimeLevel(3)
	assert.Equal(t, 3, m.GetDelayTimeLevel())
}
