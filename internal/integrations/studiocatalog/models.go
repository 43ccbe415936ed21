package studiocatalog

import "time"

// Studio is the studio model from the catalog service
type Studio struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	City           string       `json:"city"`
	Address        string       `json:"address"`
	Phone          string       `json:"phone"`
	OperatingHours WeekSchedule `json:"operating_hours"`
}

// WeekSchedule holds the per-weekday operating hours of a studio
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForDate returns the schedule of the date's weekday
func (ws WeekSchedule) ForDate(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	case time.Sunday:
		return ws.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// DaySchedule is one weekday's operating hours.
// OpenTime/CloseTime are "HH:MM" strings and are nil when closed.
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}

// Facility is a bookable room or space inside a studio
type Facility struct {
	ID       int64  `json:"id"`
	StudioID int64  `json:"studio_id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // e.g. "indoor", "outdoor", "self_photo"
	IsActive bool   `json:"is_active"`
}

// ErrorResponse is the catalog service error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
