package api

import (
	"context"
	"net/url"
)

func (c *Client) GetConcepts(ctx context.Context) ([]Concept, error) {
	req, err := c.newRequest(ctx, "GET", "/conceptos", nil, nil)
	if err != nil {
		return nil, err
	}

	var concepts []Concept
	if err := c.doJSON(req, &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

func (c *Client) CreateConcept(ctx context.Context, payload ConceptRequest) (Concept, error) {
	req, err := c.newJSONRequest(ctx, "POST", "/conceptos", payload)
	if err != nil {
		return Concept{}, err
	}

	var created Concept
	if err := c.doJSON(req, &created); err != nil {
		return Concept{}, err
	}
	return created, nil
}

func (c *Client) UpdateConcept(ctx context.Context, id string, payload ConceptRequest) error {
	path := "/conceptos/" + url.PathEscape(id)
	req, err := c.newJSONRequest(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) DeleteConcept(ctx context.Context, id string) error {
	path := "/conceptos/" + url.PathEscape(id)
	req, err := c.newRequest(ctx, "DELETE", path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) GetCharges(ctx context.Context, unitID, status string) ([]Charge, error) {
	q := url.Values{}
	if unitID != "" {
		q.Set("vivienda_id", unitID)
	}
	if status != "" {
		q.Set("estado", status)
	}

	req, err := c.newRequest(ctx, "GET", "/cargos", q, nil)
	if err != nil {
		return nil, err
	}

	var charges []Charge
	if err := c.doJSON(req, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}

func (c *Client) CreateCharge(ctx context.Context, payload ChargeRequest) (Charge, error) {
	req, err := c.newJSONRequest(ctx, "POST", "/cargos", payload)
	if err != nil {
		return Charge{}, err
	}

	var created Charge
	if err := c.doJSON(req, &created); err != nil {
		return Charge{}, err
	}
	return created, nil
}

func (c *Client) PayCharge(ctx context.Context, chargeID string, payload PaymentRequest) (Payment, error) {
	path := "/cargos/" + url.PathEscape(chargeID) + "/pagar"
	req, err := c.newJSONRequest(ctx, "POST", path, payload)
	if err != nil {
		return Payment{}, err
	}

	var payment Payment
	if err := c.doJSON(req, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (c *Client) GetPayments(ctx context.Context, chargeID string) ([]Payment, error) {
	q := url.Values{}
	if chargeID != "" {
		q.Set("cargo_id", chargeID)
	}

	req, err := c.newRequest(ctx, "GET", "/pagos", q, nil)
	if err != nil {
		return nil, err
	}

	var payments []Payment
	if err := c.doJSON(req, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
