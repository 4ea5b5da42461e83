package api

import (
	"context"
	"net/url"

	"condo-cli/logger"
)

func (c *Client) GetAreas(ctx context.Context) ([]Area, error) {
	req, err := c.newRequest(ctx, "GET", "/areas", nil, nil)
	if err != nil {
		return nil, err
	}

	var areas []Area
	if err := c.doJSON(req, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// GetAvailability returns the server-declared slots for one area on one
// date. A successful response without a slots array decodes to an empty
// list; a transport or backend failure is returned as an error and must
// not be mistaken for an empty day.
func (c *Client) GetAvailability(ctx context.Context, areaID, date string) ([]AvailabilitySlot, error) {
	q := url.Values{}
	q.Set("fecha", date)

	path := "/areas/" + url.PathEscape(areaID) + "/disponibilidad"
	req, err := c.newRequest(ctx, "GET", path, q, nil)
	if err != nil {
		return nil, err
	}

	var resp AvailabilityResponse
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	if resp.Slots == nil {
		logger.Warn("availability response missing slots array", "area", areaID, "date", date)
		return []AvailabilitySlot{}, nil
	}
	return resp.Slots, nil
}
