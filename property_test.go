package ons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/onsmq/ons-client-go/log"
)

// newTestProperty builds the store with the defaults applied and without the
// credential overlay
func newTestProperty() *FactoryProperty {
	return newTestPropertyWithLogger(&log.MockLogger{})
}

func newTestPropertyWithLogger(l log.Logger) *FactoryProperty {
	p := &FactoryProperty{properties: make(map[string]string, 19), logger: l}
	p.setDefaults()
	return p
}

func TestDefaults(t *testing.T) {
	p := newTestProperty()

	assert.Equal(t, "CLUSTERING", p.GetMessageModel())
	assert.Equal(t, 3000*time.Millisecond, p.GetSendMsgTimeout())
	assert.Equal(t, 3000*time.Millisecond, p.GetSuspendTimeMillis())

	size, err := p.GetMaxMsgCacheSize()
	assert.Nil(t, err)
	assert.Equal(t, 1000, size)

	assert.True(t, p.GetOnsTraceSwitch())
	assert.Equal(t, Aliyun, p.GetOnsChannel())
	assert.Equal(t, "ALIYUN", p.GetChannel())
}

func TestMessageModelRoundTrip(t *testing.T) {
	p := newTestProperty()

	for _, m := range []Model{BroadCasting, Clustering} {
		assert.Nil(t, p.SetMessageModel(m))
		assert.Equal(t, m.String(), p.GetMessageModel())
	}

	err := p.SetProperty(MessageModel, "SOMETHING")
	assert.NotNil(t, err)
	assert.Equal(t, "CLUSTERING", p.GetMessageModel())

	err = p.SetMessageModel(Model(9))
	assert.NotNil(t, err)
	assert.Equal(t, ClientCheck, err.(*ClientError).Code)
}

func TestCredentialValidation(t *testing.T) {
	p := newTestProperty()

	err := p.SetAccessKey("")
	assert.NotNil(t, err)
	assert.Equal(t, ClientCheck, err.(*ClientError).Code)
	assert.Equal(t, "", p.GetAccessKey())

	assert.Nil(t, p.SetAccessKey("ak"))
	assert.NotNil(t, p.SetAccessKey(""))
	assert.Equal(t, "ak", p.GetAccessKey()) // the failed write changes nothing

	assert.NotNil(t, p.SetSecretKey(""))
	assert.Nil(t, p.SetSecretKey("sk"))
	assert.Equal(t, "sk", p.GetSecretKey())
}

func TestSuspendDurationZeroIsNoop(t *testing.T) {
	p := newTestProperty()

	assert.Nil(t, p.SetSuspendDuration(0))
	assert.Equal(t, 3000*time.Millisecond, p.GetSuspendTimeMillis())

	assert.Nil(t, p.SetSuspendDuration(5*time.Second))
	assert.Nil(t, p.SetSuspendDuration(0))
	assert.Equal(t, 5000*time.Millisecond, p.GetSuspendTimeMillis())
}

func TestIdentityFallback(t *testing.T) {
	p := newTestProperty()
	assert.Equal(t, "", p.GetProducerID())
	assert.Equal(t, "", p.GetConsumerID())

	assert.Nil(t, p.SetProducerID("P1"))
	assert.Nil(t, p.SetConsumerID("C1"))
	assert.Equal(t, "P1", p.GetProducerID())
	assert.Equal(t, "C1", p.GetConsumerID())

	assert.Nil(t, p.SetGroupID("G1"))
	assert.Equal(t, "G1", p.GetGroupID())
	assert.Equal(t, "G1", p.GetProducerID())
	assert.Equal(t, "G1", p.GetConsumerID())
}

func TestDurationAccessorsTolerateBadValues(t *testing.T) {
	p := newTestProperty()

	assert.Nil(t, p.SetProperty(SendMsgTimeoutMillis, "not-a-number"))
	assert.Equal(t, time.Duration(0), p.GetSendMsgTimeout())

	assert.Nil(t, p.SetProperty(SuspendTimeMillis, "not-a-number"))
	assert.Equal(t, time.Duration(0), p.GetSuspendTimeMillis())

	assert.Nil(t, p.SetSendMsgTimeoutMillis(1500))
	assert.Equal(t, 1500*time.Millisecond, p.GetSendMsgTimeout())
}

func TestCountAccessorsPropagateBadValues(t *testing.T) {
	p := newTestProperty()

	times, err := p.GetSendMsgRetryTimes()
	assert.Nil(t, err)
	assert.Equal(t, -1, times)

	assert.Nil(t, p.SetSendMsgRetryTimes(5))
	times, err = p.GetSendMsgRetryTimes()
	assert.Nil(t, err)
	assert.Equal(t, 5, times)

	assert.Nil(t, p.SetProperty(SendMsgRetryTimes, "not-a-number"))
	_, err = p.GetSendMsgRetryTimes()
	assert.NotNil(t, err)

	nums, err := p.GetConsumeThreadNums()
	assert.Nil(t, err)
	assert.Equal(t, -1, nums)

	assert.Nil(t, p.SetConsumeThreadNums(8))
	nums, err = p.GetConsumeThreadNums()
	assert.Nil(t, err)
	assert.Equal(t, 8, nums)

	size, err := p.GetMaxMsgCacheSizeInMiB()
	assert.Nil(t, err)
	assert.Equal(t, -1, size)

	assert.Nil(t, p.SetMaxCachedMessageSizeInMiB(512))
	size, err = p.GetMaxMsgCacheSizeInMiB()
	assert.Nil(t, err)
	assert.Equal(t, 512, size)

	assert.Nil(t, p.SetProperty(MaxMsgCacheSize, "not-a-number"))
	_, err = p.GetMaxMsgCacheSize()
	assert.NotNil(t, err)
}

func TestChannel(t *testing.T) {
	p := newTestProperty()
	assert.Equal(t, Aliyun, p.GetOnsChannel())

	for _, c := range []Channel{Cloud, Aliyun, All, Local, Inner} {
		assert.Nil(t, p.SetChannel(c))
		assert.Equal(t, c, p.GetOnsChannel())
		assert.Equal(t, c.String(), p.GetChannel())
	}

	assert.Nil(t, p.SetProperty(OnsChannel, "SOMEWHERE"))
	assert.Equal(t, Aliyun, p.GetOnsChannel())

	err := p.SetChannel(Channel(9))
	assert.NotNil(t, err)
	assert.Equal(t, ClientCheck, err.(*ClientError).Code)
}

func TestTraceSwitch(t *testing.T) {
	p := newTestProperty()
	assert.True(t, p.GetOnsTraceSwitch())

	assert.Nil(t, p.SetTraceSwitch(false))
	assert.False(t, p.GetOnsTraceSwitch())

	assert.Nil(t, p.SetTraceSwitch(true))
	assert.True(t, p.GetOnsTraceSwitch())

	assert.Nil(t, p.WithTraceFeature(TraceOff))
	assert.False(t, p.GetOnsTraceSwitch())

	// anything but the exact "false" keeps the trace on
	assert.Nil(t, p.SetProperty(OnsTraceSwitch, "FALSE"))
	assert.True(t, p.GetOnsTraceSwitch())
}

func TestReady(t *testing.T) {
	p := newTestProperty()
	assert.False(t, p.Ready()) // the default channel needs the credential

	assert.Nil(t, p.SetAccessKey("ak"))
	assert.False(t, p.Ready())

	assert.Nil(t, p.SetSecretKey("sk"))
	assert.True(t, p.Ready())

	p = newTestProperty()
	assert.Nil(t, p.SetChannel(Local))
	assert.True(t, p.Ready())
}

func TestBulkOperations(t *testing.T) {
	p := newTestProperty()

	// the bulk replacement skips the validation gate
	p.SetProperties(map[string]string{AccessKey: "", MessageModel: "SOMETHING"})
	assert.Equal(t, "", p.GetAccessKey())
	assert.Equal(t, "SOMETHING", p.GetMessageModel())

	src := map[string]string{GroupID: "G1"}
	p.SetProperties(src)
	src[GroupID] = "G2"
	assert.Equal(t, "G1", p.GetGroupID()) // detached from the source map

	copied := p.Properties()
	copied[GroupID] = "G3"
	assert.Equal(t, "G1", p.GetGroupID()) // the copy is independent
}

func TestGetProperty(t *testing.T) {
	p := newTestProperty()

	_, ok := p.GetProperty(InstanceID)
	assert.False(t, ok)

	assert.Nil(t, p.SetInstanceID("i-1"))
	v, ok := p.GetProperty(InstanceID)
	assert.True(t, ok)
	assert.Equal(t, "i-1", v)
	assert.Equal(t, "i-1", p.GetInstanceID())

	assert.Nil(t, p.SetLogPath("/tmp/ons"))
	assert.Equal(t, "/tmp/ons", p.GetLogPath())

	assert.Nil(t, p.SetNameSrvAddr("1.2.3.4:9876"))
	assert.Equal(t, "1.2.3.4:9876", p.GetNameSrvAddr())

	assert.Nil(t, p.SetNameSrvDomain("onsaddr.example.com"))
	assert.Equal(t, "onsaddr.example.com", p.GetNameSrvDomain())

	assert.Nil(t, p.SetConsumerInstanceName("inst"))
	assert.Equal(t, "inst", p.GetConsumerInstanceName())
}
