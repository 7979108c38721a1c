package client

import (
	"context"
	"fmt"
	"net/http"
)

// DetalleFactura is one invoice line item.
type DetalleFactura struct {
	IDProducto     int     `json:"id_producto"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Cantidad       int     `json:"cantidad"`
}

// Factura is an invoice with its line items and a status drawn from the
// backend's estado_factura enumeration.
type Factura struct {
	IDFactura       int              `json:"id_factura"`
	IDCliente       int              `json:"id_cliente"`
	IDLocal         int              `json:"id_local"`
	Estado          string           `json:"estado"`
	Total           float64          `json:"total"`
	DetalleFacturas []DetalleFactura `json:"detalle_facturas"`
}

// CreateFacturaRequest registers an invoice for a client at the local owned by
// id_usuario_local. Line subtotals are computed by the backend.
type CreateFacturaRequest struct {
	IDCliente       int              `json:"id_cliente" validate:"required"`
	IDUsuarioLocal  int              `json:"id_usuario_local" validate:"required"`
	Estado          string           `json:"estado" validate:"required"`
	Total           float64          `json:"total" validate:"gte=0"`
	DetalleFacturas []DetalleFactura `json:"detalle_facturas" validate:"min=1,dive"`
}

// CreateFactura registers a new invoice and returns it as stored.
func (c *Client) CreateFactura(ctx context.Context, req CreateFacturaRequest) (*Factura, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}
	for _, detalle := range req.DetalleFacturas {
		if detalle.Cantidad < 1 {
			return nil, fmt.Errorf("invalid invoice: cantidad must be at least 1")
		}
	}

	var resp struct {
		Message string  `json:"message"`
		Factura Factura `json:"factura"`
	}
	if err := c.do(ctx, http.MethodPost, "/facturas", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Factura, nil
}

// FacturasByUsuario lists the invoices registered by a local user.
func (c *Client) FacturasByUsuario(ctx context.Context, idUsuario int) ([]Factura, error) {
	var resp struct {
		Facturas []Factura `json:"facturas"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/facturas/usuario/%d", idUsuario), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Facturas, nil
}

// FacturasByLocal lists the invoices of a local business.
func (c *Client) FacturasByLocal(ctx context.Context, idLocal int) ([]Factura, error) {
	var facturas []Factura
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/facturas/local/%d", idLocal), nil, &facturas); err != nil {
		return nil, err
	}
	return facturas, nil
}

// UpdateFacturaEstado transitions an invoice to a new status. Total and
// puntos_ganados are sent as explicit nulls so the backend recomputes them.
func (c *Client) UpdateFacturaEstado(ctx context.Context, idFactura int, estado string) (*Factura, error) {
	req := struct {
		Estado        string   `json:"estado"`
		Total         *float64 `json:"total"`
		PuntosGanados *int     `json:"puntos_ganados"`
	}{Estado: estado}

	var factura Factura
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/facturas/%d", idFactura), req, &factura); err != nil {
		return nil, err
	}
	return &factura, nil
}

// DeleteFactura removes an invoice.
func (c *Client) DeleteFactura(ctx context.Context, idFactura int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/facturas/%d", idFactura), nil, nil)
}
