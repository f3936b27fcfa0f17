package availability

// Slot is one bookable (field, schedule) combination on a requested date,
// with the remaining capacity and the applicable hourly price. PricePerHour
// is nil when no price rule covers the schedule window.
type Slot struct {
	SlotID        int64
	FieldID       int64
	FieldName     string
	TypeFieldID   int64
	TypeFieldName string
	ScheduleID    int64
	TimeFrom      string
	TimeTo        string
	Capacity      float64
	Booked        float64
	Remaining     float64
	PricePerHour  *float64
}

// Filter narrows the availability listing. Date is required by the HTTP
// layer; ScheduleID is optional.
type Filter struct {
	ScheduleID int64
}
