package studiocatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging contract of the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is the HTTP client for the studio catalog service, which owns
// studios, facilities and their operating hours.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a studio catalog client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStudio fetches a studio with its per-weekday operating hours
func (c *Client) GetStudio(ctx context.Context, studioID int64) (*Studio, error) {
	url := fmt.Sprintf("%s/internal/studios/%d", c.baseURL, studioID)

	var studio Studio
	if err := c.getJSON(ctx, url, &studio, ErrStudioNotFound); err != nil {
		return nil, err
	}

	return &studio, nil
}

// GetFacility fetches a facility of a studio
func (c *Client) GetFacility(ctx context.Context, studioID, facilityID int64) (*Facility, error) {
	url := fmt.Sprintf("%s/internal/studios/%d/facilities/%d", c.baseURL, studioID, facilityID)

	var facility Facility
	if err := c.getJSON(ctx, url, &facility, ErrFacilityNotFound); err != nil {
		return nil, err
	}

	return &facility, nil
}

// getJSON performs a GET request and decodes the response body.
// A 404 maps to notFoundErr; everything else unexpected wraps ErrInvalidResponse.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
