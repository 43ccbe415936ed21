package reschedule_reservation

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	rescheduleReservation "github.com/lensastudio/booking-service/internal/usecase/reschedule_reservation"
	"github.com/lensastudio/booking-service/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	NewDate      string `json:"newDate"`      // "YYYY-MM-DD"
	NewStartTime string `json:"newStartTime"` // "HH:MM"
}

// ToUseCaseRequest converts the HTTP request into the use case request
func (r *RescheduleRequest) ToUseCaseRequest(userID, reservationID int64) (*rescheduleReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		UserID:        userID,
		ReservationID: reservationID,
		NewDate:       date,
		NewStartTime:  startTime,
	}, nil
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduleResponse {
	res := resp.Reservation
	return &RescheduleResponse{
		ID:        res.ID,
		Code:      res.Code,
		Date:      res.ReservationDate.Format(domain.DateFormat),
		StartTime: res.StartTime.String(),
		EndTime:   res.EndTime.String(),
		Status:    string(res.Status),
	}
}
