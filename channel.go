package ons

import "strconv"

// Channel the deployment environment of the messaging service
type Channel int8

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelDescs) {
		panic("BUG:unknown channel:" + strconv.Itoa(int(c)))
	}
	return channelDescs[c]
}

var channelDescs = []string{"CLOUD", "ALIYUN", "ALL", "LOCAL", "INNER"}

const (
	// Cloud the public cloud service
	Cloud Channel = iota
	// Aliyun the aliyun-hosted service, the default
	Aliyun
	// All no environment restriction
	All
	// Local the locally deployed service
	Local
	// Inner the internal service
	Inner
)
