package ons

// property keys recognized by the factory, the string values are the wire
// vocabulary shared with the credential file and must not change
const (
	LogPath                   = "LogPath"
	ProducerID                = "ProducerId"
	ConsumerID                = "ConsumerId"
	GroupID                   = "GroupId"
	AccessKey                 = "AccessKey"
	SecretKey                 = "SecretKey"
	MessageModel              = "MessageModel"
	SendMsgTimeoutMillis      = "SendMsgTimeoutMillis"
	SuspendTimeMillis         = "SuspendTimeMillis"
	SendMsgRetryTimes         = "SendMsgRetryTimes"
	MaxMsgCacheSize           = "MaxMsgCacheSize"
	MaxCachedMessageSizeInMiB = "MaxCachedMessageSizeInMiB"
	ONSAddr                   = "ONSAddr"      // name server domain name
	NameSrvAddr               = "NAMESRV_ADDR" // name server ip addr
	ConsumeThreadNums         = "ConsumeThreadNums"
	OnsChannel                = "OnsChannel"
	OnsTraceSwitch            = "OnsTraceSwitch"
	ConsumerInstanceName      = "ConsumerInstanceName"
	InstanceID                = "InstanceId"
)

// predefined const
const (
	DefaultChannel = "ALIYUN"

	defaultSendMsgTimeoutMillis = "3000"
	defaultSuspendTimeMillis    = "3000"
	defaultMaxMsgCacheSize      = "1000"
)
