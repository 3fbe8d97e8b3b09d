package event

import (
	"strings"
)

var (
	nameToType = map[string]EventType{
		"enter":   EventPointerEnter,
		"exit":    EventPointerExit,
		"press":   EventPointerPress,
		"release": EventPointerRelease,
		"drop":    EventPointerDrop,
	}
	typeToName = map[EventType]string{}
)

func init() {
	for name, et := range nameToType {
		typeToName[et] = name
	}
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "unknown"
}

// String implements fmt.Stringer
func (et EventType) String() string {
	return GetEventName(et)
}
