package models

import "time"

// ReminderItem is one payment reminder in the staff dashboard. Countdown
// counts down to auto-cancellation; expired items stay visible for a short
// grace period with Countdown set to "Expired".
type ReminderItem struct {
	ReservationID   int64     `json:"reservationId"`
	ReservationCode string    `json:"reservationCode"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	PackageName     string    `json:"packageName"`
	ReservationDate string    `json:"reservationDate"` // "2026-09-15"
	StartTime       string    `json:"startTime"`       // "10:00"
	DPAmount        float64   `json:"dpAmount"`
	CreatedAt       time.Time `json:"createdAt"`
	RemindAt        time.Time `json:"remindAt"`
	CancelAt        time.Time `json:"cancelAt"`
	Countdown       string    `json:"countdown"` // "{m} menit {s} detik" or "Expired"
	Expired         bool      `json:"expired"`
	WhatsAppLink    string    `json:"whatsappLink"`
}

// ReminderListResponse is the staff-facing reminder listing
type ReminderListResponse struct {
	Reminders []ReminderItem `json:"reminders"`
}
