package client

import (
	"context"
	"net/http"
)

// Status values come from the backend rather than being hard-coded here, so the
// CLI keeps working when the platform adds states.

type enumResponse struct {
	Values []string `json:"values"`
}

// EstadosFactura lists the valid invoice status values.
func (c *Client) EstadosFactura(ctx context.Context) ([]string, error) {
	var resp enumResponse
	if err := c.do(ctx, http.MethodGet, "/enums/estado_factura", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// EstadosCanje lists the valid redemption status values.
func (c *Client) EstadosCanje(ctx context.Context) ([]string, error) {
	var resp enumResponse
	if err := c.do(ctx, http.MethodGet, "/enums/estado_canje", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}
