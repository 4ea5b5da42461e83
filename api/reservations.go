package api

import (
	"context"
	"net/url"
)

// GetReservations lists reservations for the given scope: "mine" for
// the logged-in resident, "all" for administrators.
func (c *Client) GetReservations(ctx context.Context, scope string) ([]Reservation, error) {
	q := url.Values{}
	if scope != "" {
		q.Set("scope", scope)
	}

	req, err := c.newRequest(ctx, "GET", "/reservas", q, nil)
	if err != nil {
		return nil, err
	}

	var reservations []Reservation
	if err := c.doJSON(req, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, areaID string, payload ReservationRequest) (Reservation, error) {
	path := "/areas/" + url.PathEscape(areaID) + "/reservas"
	req, err := c.newJSONRequest(ctx, "POST", path, payload)
	if err != nil {
		return Reservation{}, err
	}

	var created Reservation
	if err := c.doJSON(req, &created); err != nil {
		return Reservation{}, err
	}
	return created, nil
}

// Status transitions are owned by the backend; these calls only request
// them. Callers re-fetch the ledger to observe the result.

func (c *Client) ConfirmReservation(ctx context.Context, id string) error {
	path := "/reservas/" + url.PathEscape(id) + "/confirmar"
	req, err := c.newRequest(ctx, "POST", path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	path := "/reservas/" + url.PathEscape(id) + "/cancelar"
	req, err := c.newRequest(ctx, "POST", path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	path := "/reservas/" + url.PathEscape(id)
	req, err := c.newRequest(ctx, "DELETE", path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
