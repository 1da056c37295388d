package ons

import (
	"strconv"
	"time"

	"github.com/onsmq/ons-client-go/log"
)

// FactoryProperty the configuration of the client factory. It keeps every
// setting as a string property and exposes the typed views the session
// establishment depends on.
//
// It is built for single-goroutine configuration during setup followed by
// read-only sharing, the mutating operations are not synchronized.
type FactoryProperty struct {
	properties map[string]string
	logger     log.Logger
}

// NewFactoryProperty creates the factory property with the built-in defaults
// applied and the credential file overlaid when present
func NewFactoryProperty() *FactoryProperty {
	return NewFactoryPropertyWithLogger(log.Std)
}

// NewFactoryPropertyWithLogger creates the factory property logging through
// the specified logger
func NewFactoryPropertyWithLogger(logger log.Logger) *FactoryProperty {
	p := &FactoryProperty{
		properties: make(map[string]string, 19),
		logger:     logger,
	}
	p.setDefaults()
	p.loadCredentialFile()
	return p
}

// the defaults cannot fail the validation gate, the errors are ignored
func (p *FactoryProperty) setDefaults() {
	p.SetMessageModel(Clustering)
	p.SetSendMsgTimeout(3 * time.Second)
	p.SetSuspendDuration(3 * time.Second)
	p.SetProperty(MaxMsgCacheSize, defaultMaxMsgCacheSize)
	p.WithTraceFeature(TraceOn)
}

// SetProperty updates the property of the key, every mutation but the bulk
// replacement passes through here
func (p *FactoryProperty) SetProperty(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	p.properties[key] = value
	return nil
}

func validate(key, value string) error {
	switch key {
	case MessageModel:
		if value != BroadCasting.String() && value != Clustering.String() {
			return clientCheckError("MessageModel could only be set to BROADCASTING or CLUSTERING, please set it.")
		}
	case AccessKey:
		if value == "" {
			return clientCheckError("AccessKey must be set.")
		}
	case SecretKey:
		if value == "" {
			return clientCheckError("SecretKey must be set.")
		}
	}
	return nil
}

// GetProperty returns the value of the key and whether it is present
func (p *FactoryProperty) GetProperty(key string) (string, bool) {
	value, ok := p.properties[key]
	return value, ok
}

func (p *FactoryProperty) getOrDefault(key, def string) string {
	if value, ok := p.properties[key]; ok {
		return value
	}
	return def
}

// SetProperties replaces the whole property map. The replacement skips the
// validation gate, the caller is trusted to supply checked values.
func (p *FactoryProperty) SetProperties(properties map[string]string) {
	np := make(map[string]string, len(properties))
	for k, v := range properties {
		np[k] = v
	}
	p.properties = np
}

// Properties returns a copy of the current property map, mutating the copy
// does not touch the factory property
func (p *FactoryProperty) Properties() map[string]string {
	properties := make(map[string]string, len(p.properties))
	for k, v := range p.properties {
		properties[k] = v
	}
	return properties
}

// SetLogPath updates the client log directory
func (p *FactoryProperty) SetLogPath(path string) error {
	return p.SetProperty(LogPath, path)
}

// SetProducerID updates the standalone producer identity
func (p *FactoryProperty) SetProducerID(id string) error {
	return p.SetProperty(ProducerID, id)
}

// SetConsumerID updates the standalone consumer identity
func (p *FactoryProperty) SetConsumerID(id string) error {
	return p.SetProperty(ConsumerID, id)
}

// SetGroupID updates the group identity, it supersedes the producer and the
// consumer ids once set
func (p *FactoryProperty) SetGroupID(id string) error {
	return p.SetProperty(GroupID, id)
}

// SetAccessKey updates the access key, the empty value is rejected
func (p *FactoryProperty) SetAccessKey(key string) error {
	return p.SetProperty(AccessKey, key)
}

// SetSecretKey updates the secret key, the empty value is rejected
func (p *FactoryProperty) SetSecretKey(key string) error {
	return p.SetProperty(SecretKey, key)
}

// SetNameSrvAddr updates the name server address
func (p *FactoryProperty) SetNameSrvAddr(addr string) error {
	return p.SetProperty(NameSrvAddr, addr)
}

// SetNameSrvDomain updates the name server domain name
func (p *FactoryProperty) SetNameSrvDomain(domain string) error {
	return p.SetProperty(ONSAddr, domain)
}

// SetInstanceID updates the instance id
func (p *FactoryProperty) SetInstanceID(id string) error {
	return p.SetProperty(InstanceID, id)
}

// SetConsumerInstanceName updates the consumer instance name
func (p *FactoryProperty) SetConsumerInstanceName(name string) error {
	return p.SetProperty(ConsumerInstanceName, name)
}

// SetMessageModel updates the message model, only BroadCasting and
// Clustering pass the check
func (p *FactoryProperty) SetMessageModel(m Model) error {
	switch m {
	case BroadCasting, Clustering:
		return p.SetProperty(MessageModel, m.String())
	}
	return clientCheckError("MessageModel could only be set to BROADCASTING or CLUSTERING, please set it.")
}

// SetChannel updates the channel, the value out of the enumerated range is
// rejected
func (p *FactoryProperty) SetChannel(c Channel) error {
	switch c {
	case Cloud, Aliyun, All, Local, Inner:
		return p.SetProperty(OnsChannel, c.String())
	}
	return clientCheckError("OnsChannel could only be set to CLOUD/ALIYUN/ALL/LOCAL/INNER, please reset it.")
}

// SetSendMsgTimeout updates the send timeout, stored as milliseconds
func (p *FactoryProperty) SetSendMsgTimeout(timeout time.Duration) error {
	return p.SetProperty(SendMsgTimeoutMillis, strconv.FormatInt(int64(timeout/time.Millisecond), 10))
}

// SetSendMsgTimeoutMillis updates the send timeout from a raw millisecond
// count
func (p *FactoryProperty) SetSendMsgTimeoutMillis(millis int) error {
	return p.SetProperty(SendMsgTimeoutMillis, strconv.Itoa(millis))
}

// SetSuspendDuration updates the suspend duration of the consuming failure,
// stored as milliseconds, the zero duration is a no-op
func (p *FactoryProperty) SetSuspendDuration(duration time.Duration) error {
	if duration == 0 {
		return nil
	}
	return p.SetProperty(SuspendTimeMillis, strconv.FormatInt(int64(duration/time.Millisecond), 10))
}

// SetSendMsgRetryTimes updates the send retry count
func (p *FactoryProperty) SetSendMsgRetryTimes(times int) error {
	return p.SetProperty(SendMsgRetryTimes, strconv.Itoa(times))
}

// SetMaxMsgCacheSize updates the max count of the cached messages
func (p *FactoryProperty) SetMaxMsgCacheSize(size int) error {
	return p.SetProperty(MaxMsgCacheSize, strconv.Itoa(size))
}

// SetMaxCachedMessageSizeInMiB updates the max size of the cached messages
func (p *FactoryProperty) SetMaxCachedMessageSizeInMiB(size int) error {
	return p.SetProperty(MaxCachedMessageSizeInMiB, strconv.Itoa(size))
}

// SetConsumeThreadNums updates the count of the consuming routines
func (p *FactoryProperty) SetConsumeThreadNums(nums int) error {
	return p.SetProperty(ConsumeThreadNums, strconv.Itoa(nums))
}

// WithTraceFeature switches the message trace feature
func (p *FactoryProperty) WithTraceFeature(t Trace) error {
	switch t {
	case TraceOn:
		return p.SetProperty(OnsTraceSwitch, "true")
	case TraceOff:
		return p.SetProperty(OnsTraceSwitch, "false")
	}
	return nil
}

// SetTraceSwitch switches the message trace feature
func (p *FactoryProperty) SetTraceSwitch(shouldTrace bool) error {
	return p.SetProperty(OnsTraceSwitch, strconv.FormatBool(shouldTrace))
}

// GetLogPath returns the client log directory
func (p *FactoryProperty) GetLogPath() string {
	return p.getOrDefault(LogPath, "")
}

// GetProducerID returns the group id when present, falling back to the
// standalone producer id
func (p *FactoryProperty) GetProducerID() string {
	if id, ok := p.properties[GroupID]; ok {
		return id
	}
	return p.getOrDefault(ProducerID, "")
}

// GetConsumerID returns the group id when present, falling back to the
// standalone consumer id
func (p *FactoryProperty) GetConsumerID() string {
	if id, ok := p.properties[GroupID]; ok {
		return id
	}
	return p.getOrDefault(ConsumerID, "")
}

// GetGroupID returns the group id
func (p *FactoryProperty) GetGroupID() string {
	return p.getOrDefault(GroupID, "")
}

// GetMessageModel returns the message model literal
func (p *FactoryProperty) GetMessageModel() string {
	return p.getOrDefault(MessageModel, "")
}

// GetSendMsgTimeout returns the send timeout, zero when the property is
// absent or does not parse
func (p *FactoryProperty) GetSendMsgTimeout() time.Duration {
	return p.millisOrZero(SendMsgTimeoutMillis)
}

// GetSuspendTimeMillis returns the suspend duration, zero when the property
// is absent or does not parse
func (p *FactoryProperty) GetSuspendTimeMillis() time.Duration {
	return p.millisOrZero(SuspendTimeMillis)
}

func (p *FactoryProperty) millisOrZero(key string) time.Duration {
	value, ok := p.properties[key]
	if !ok {
		return 0
	}

	millis, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0
	}
	return time.Duration(millis) * time.Millisecond
}

// GetSendMsgRetryTimes returns the send retry count, -1 when the property is
// absent, the parse error of a present value propagates
func (p *FactoryProperty) GetSendMsgRetryTimes() (int, error) {
	return p.countOrUnset(SendMsgRetryTimes)
}

// GetConsumeThreadNums returns the count of the consuming routines, -1 when
// the property is absent, the parse error of a present value propagates
func (p *FactoryProperty) GetConsumeThreadNums() (int, error) {
	return p.countOrUnset(ConsumeThreadNums)
}

// GetMaxMsgCacheSize returns the max count of the cached messages, -1 when
// the property is absent, the parse error of a present value propagates
func (p *FactoryProperty) GetMaxMsgCacheSize() (int, error) {
	return p.countOrUnset(MaxMsgCacheSize)
}

// GetMaxMsgCacheSizeInMiB returns the max size of the cached messages, -1
// when the property is absent, the parse error of a present value propagates
func (p *FactoryProperty) GetMaxMsgCacheSizeInMiB() (int, error) {
	return p.countOrUnset(MaxCachedMessageSizeInMiB)
}

func (p *FactoryProperty) countOrUnset(key string) (int, error) {
	value, ok := p.properties[key]
	if !ok {
		return -1, nil
	}
	return strconv.Atoi(value)
}

// GetOnsChannel returns the channel, Aliyun when the property is absent or
// holds an unrecognized literal
func (p *FactoryProperty) GetOnsChannel() Channel {
	switch p.getOrDefault(OnsChannel, DefaultChannel) {
	case "CLOUD":
		return Cloud
	case "ALIYUN":
		return Aliyun
	case "ALL":
		return All
	case "LOCAL":
		return Local
	case "INNER":
		return Inner
	}

	return Aliyun // default value
}

// GetChannel returns the channel literal
func (p *FactoryProperty) GetChannel() string {
	return p.getOrDefault(OnsChannel, DefaultChannel)
}

// GetNameSrvAddr returns the name server address
func (p *FactoryProperty) GetNameSrvAddr() string {
	return p.getOrDefault(NameSrvAddr, "")
}

// GetNameSrvDomain returns the name server domain name
func (p *FactoryProperty) GetNameSrvDomain() string {
	return p.getOrDefault(ONSAddr, "")
}

// GetAccessKey returns the access key
func (p *FactoryProperty) GetAccessKey() string {
	return p.getOrDefault(AccessKey, "")
}

// GetSecretKey returns the secret key
func (p *FactoryProperty) GetSecretKey() string {
	return p.getOrDefault(SecretKey, "")
}

// GetConsumerInstanceName returns the consumer instance name
func (p *FactoryProperty) GetConsumerInstanceName() string {
	return p.getOrDefault(ConsumerInstanceName, "")
}

// GetInstanceID returns the instance id
func (p *FactoryProperty) GetInstanceID() string {
	return p.getOrDefault(InstanceID, "")
}

// GetOnsTraceSwitch returns true unless the property holds exactly "false"
func (p *FactoryProperty) GetOnsTraceSwitch() bool {
	return p.getOrDefault(OnsTraceSwitch, "true") != "false"
}

// Ready reports whether the credential is complete for the resolved channel,
// derived from the live properties on every call
func (p *FactoryProperty) Ready() bool {
	switch p.GetOnsChannel() {
	case Aliyun:
		return p.GetAccessKey() != "" && p.GetSecretKey() != ""
	default:
		return true
	}
}
