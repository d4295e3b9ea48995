package entity

// Weekday is one of the seven office day tokens.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekDays is the canonical Monday-first ordering. Office days are
// stored in this order regardless of submission order.
var WeekDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeWindow is a repeating appointment window within a day.
// Both fields are HH:MM 24-hour strings with Start strictly before End.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleConfig holds the active office days and the repeating time
// windows applied uniformly to every active day. It is replaced
// wholesale on each settings save, never merged.
type ScheduleConfig struct {
	OfficeDays []Weekday    `json:"office_days"`
	TimeSlots  []TimeWindow `json:"time_slots"`
}

// EmptyScheduleConfig is the read-path default when nothing was saved.
func EmptyScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		OfficeDays: []Weekday{},
		TimeSlots:  []TimeWindow{},
	}
}
