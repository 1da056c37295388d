package ons

// Trace the message trace feature switch
type Trace int8

const (
	// TraceOn enable the message trace
	TraceOn Trace = iota
	// TraceOff disable the message trace
	TraceOff
)
