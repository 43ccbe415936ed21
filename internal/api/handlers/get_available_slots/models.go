package get_available_slots

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	getAvailableSlots "github.com/lensastudio/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StudioID   int64           `json:"studioId"`
	FacilityID int64           `json:"facilityId"`
	Date       string          `json:"date"`
	Closed     bool            `json:"closed"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot is one slot candidate
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		StudioID:   resp.StudioID,
		FacilityID: resp.FacilityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Closed:     resp.Closed,
		Slots:      slots,
	}
}

// ToUseCaseRequest builds the use case request from path and query params
func ToUseCaseRequest(studioID, facilityID int64, dateStr string, durationMinutes int, excludeReservationID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StudioID:             studioID,
		FacilityID:           facilityID,
		Date:                 date,
		DurationMinutes:      durationMinutes,
		ExcludeReservationID: excludeReservationID,
	}, nil
}
