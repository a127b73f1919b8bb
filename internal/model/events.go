package model

// Events receives the activity emitted by properties and agreements.
// The sink decides where log lines and notifications end up.
type Events interface {
	Log(message string)
	Notify(message string)
}

type nopEvents struct{}

func (nopEvents) Log(string)    {}
func (nopEvents) Notify(string) {}

// NopEvents discards everything.
var NopEvents Events = nopEvents{}

func eventsOrNop(events Events) Events {
	if events == nil {
		return NopEvents
	}
	return events
}
