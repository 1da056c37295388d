package message

// property keys of the message
const (
	PropertyKeys           = "KEYS"
	PropertyTags           = "TAGS"
	PropertyDelayTimeLevel = "DELAY"

	// KeySep the separator of the multi-value keys
	KeySep = " "
)
