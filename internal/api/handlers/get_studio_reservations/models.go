package get_studio_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/service/reservations/models"
)

// ToServiceRequest builds the service request from query parameters
func ToServiceRequest(studioID int64, query url.Values) (*models.GetStudioReservationsRequest, error) {
	req := &models.GetStudioReservationsRequest{StudioID: studioID}

	if raw := query.Get("facilityId"); raw != "" {
		facilityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.FacilityID = &facilityID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
