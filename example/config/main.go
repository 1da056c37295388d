package main

import (
	"flag"
	"fmt"

	ons "github.com/onsmq/ons-client-go"
)

var (
	namesrvAddr string
	group       string
	accessKey   string
	secretKey   string
	broadcast   bool
)

func init() {
	flag.StringVar(&namesrvAddr, "n", "", "name server address")
	flag.StringVar(&group, "g", "", "group id")
	flag.StringVar(&accessKey, "a", "", "access key")
	flag.StringVar(&secretKey, "s", "", "secret key")
	flag.BoolVar(&broadcast, "b", false, "use the broadcasting model")
}

// go run main.go -n 1.2.3.4:9876 -g GID_example -a ak -s sk
//
// the flags overlay whatever ~/ons/credential supplied
func main() {
	flag.Parse()

	p := ons.NewFactoryProperty()

	if namesrvAddr != "" {
		p.SetNameSrvAddr(namesrvAddr)
	}
	if group != "" {
		p.SetGroupID(group)
	}
	if accessKey != "" {
		if err := p.SetAccessKey(accessKey); err != nil {
			println("bad access key:" + err.Error())
			return
		}
	}
	if secretKey != "" {
		if err := p.SetSecretKey(secretKey); err != nil {
			println("bad secret key:" + err.Error())
			return
		}
	}
	if broadcast {
		if err := p.SetMessageModel(ons.BroadCasting); err != nil {
			println("bad message model:" + err.Error())
			return
		}
	}

	fmt.Printf("name server: %s\n", p.GetNameSrvAddr())
	fmt.Printf("group: %s\n", p.GetGroupID())
	fmt.Printf("consumer id: %s\n", p.GetConsumerID())
	fmt.Printf("message model: %s\n", p.GetMessageModel())
	fmt.Printf("channel: %s\n", p.GetChannel())
	fmt.Printf("send timeout: %s\n", p.GetSendMsgTimeout())
	fmt.Printf("trace: %v\n", p.GetOnsTraceSwitch())
	fmt.Printf("ready: %v\n", p.Ready())
}
