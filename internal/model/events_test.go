package model

type recordingEvents struct {
	logs          []string
	notifications []string
}

func (r *recordingEvents) Log(message string)    { r.logs = append(r.logs, message) }
func (r *recordingEvents) Notify(message string) { r.notifications = append(r.notifications, message) }

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func apartmentFields(id int, address string, rate float64, rooms int) Fields {
	return Fields{ID: id, Address: address, Area: 45, MonthlyRate: rate, Rooms: intPtr(rooms)}
}
