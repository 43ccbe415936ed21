package create_reservation

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	createReservation "github.com/lensastudio/booking-service/internal/usecase/create_reservation"
	"github.com/lensastudio/booking-service/pkg/types"
)

// AddonRequest is one addon in the creation request body
type AddonRequest struct {
	AddonID         int64   `json:"addonId"`
	AddonName       string  `json:"addonName"`
	StartTime       string  `json:"startTime"` // "HH:MM"
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StudioID        int64          `json:"studioId"`
	FacilityID      int64          `json:"facilityId"`
	PackageID       int64          `json:"packageId"`
	PackageName     string         `json:"packageName"`
	PackagePrice    float64        `json:"packagePrice"`
	Date            string         `json:"date"`      // "YYYY-MM-DD"
	StartTime       string         `json:"startTime"` // "HH:MM"
	DurationMinutes int            `json:"durationMinutes"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	Notes           *string        `json:"notes,omitempty"`
	Addons          []AddonRequest `json:"addons,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case request
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	addons := make([]createReservation.AddonRequest, 0, len(r.Addons))
	for _, addon := range r.Addons {
		addonStart, err := types.NewTimeStringFromString(addon.StartTime)
		if err != nil {
			return nil, err
		}
		addons = append(addons, createReservation.AddonRequest{
			AddonID:         addon.AddonID,
			AddonName:       addon.AddonName,
			StartTime:       addonStart,
			DurationMinutes: addon.DurationMinutes,
			Price:           addon.Price,
		})
	}

	return &createReservation.Request{
		UserID:          userID,
		StudioID:        r.StudioID,
		FacilityID:      r.FacilityID,
		PackageID:       r.PackageID,
		PackageName:     r.PackageName,
		PackagePrice:    r.PackagePrice,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Notes:           r.Notes,
		Addons:          addons,
	}, nil
}

// CreatedAddonResponse is one created addon booking
type CreatedAddonResponse struct {
	ID        int64   `json:"id"`
	AddonID   int64   `json:"addonId"`
	AddonName string  `json:"addonName"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID              int64                  `json:"id"`
	Code            string                 `json:"code"`
	Date            string                 `json:"date"`
	StartTime       string                 `json:"startTime"`
	EndTime         string                 `json:"endTime"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"paymentStatus"`
	TotalAmount     float64                `json:"totalAmount"`
	DPAmount        float64                `json:"dpAmount"`
	RemainingAmount float64                `json:"remainingAmount"`
	Addons          []CreatedAddonResponse `json:"addons"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	res := resp.Reservation

	addons := make([]CreatedAddonResponse, 0, len(resp.Addons))
	for _, addon := range resp.Addons {
		addons = append(addons, CreatedAddonResponse{
			ID:        addon.ID,
			AddonID:   addon.AddonID,
			AddonName: addon.AddonName,
			StartTime: addon.StartTime.String(),
			EndTime:   addon.EndTime.String(),
			Price:     addon.Price,
		})
	}

	return &CreateReservationResponse{
		ID:              res.ID,
		Code:            res.Code,
		Date:            res.ReservationDate.Format(domain.DateFormat),
		StartTime:       res.StartTime.String(),
		EndTime:         res.EndTime.String(),
		Status:          string(res.Status),
		PaymentStatus:   string(res.PaymentStatus),
		TotalAmount:     res.TotalAmount,
		DPAmount:        res.DPAmount,
		RemainingAmount: res.RemainingAmount,
		Addons:          addons,
	}
}
