package dailylog

type EventType string

const (
	EventNone      EventType = ""
	EventCompleted EventType = "completed"
	EventDeflected EventType = "deflected"
)
