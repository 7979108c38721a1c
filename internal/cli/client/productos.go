package client

import (
	"context"
	"fmt"
	"net/http"
)

// Producto is a catalog product as the backend stores it. Precio and Descuento
// are decimal strings ("100.50"); the backend owns the arithmetic.
type Producto struct {
	IDProducto      int     `json:"id_producto"`
	IDCategoria     *int    `json:"id_categoria"`
	IDLocal         int     `json:"id_local"`
	Nombre          string  `json:"nombre"`
	Descripcion     *string `json:"descripcion"`
	Precio          string  `json:"precio"`
	PuntosNecesario *int    `json:"puntos_necesario"`
	FotoURL         *string `json:"foto_url"`
	Disponibilidad  bool    `json:"disponibilidad"`
	Descuento       *string `json:"descuento"`
	FechaCreacion   *string `json:"fecha_creacion"`
}

// ProductoPayload is the body for creating or updating a product. The backend
// assigns id_producto and fecha_creacion.
type ProductoPayload struct {
	IDCategoria     *int    `json:"id_categoria"`
	IDLocal         int     `json:"id_local" validate:"required"`
	Nombre          string  `json:"nombre" validate:"required"`
	Descripcion     *string `json:"descripcion"`
	Precio          string  `json:"precio" validate:"required"`
	PuntosNecesario *int    `json:"puntos_necesario"`
	FotoURL         *string `json:"foto_url"`
	Disponibilidad  bool    `json:"disponibilidad"`
	Descuento       *string `json:"descuento"`
}

// ProductosByUsuario lists the products of a local user.
func (c *Client) ProductosByUsuario(ctx context.Context, idUsuario int) ([]Producto, error) {
	var productos []Producto
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/usuario/%d", idUsuario), nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

// LocalByUsuario resolves the id_local owned by a local user.
func (c *Client) LocalByUsuario(ctx context.Context, idUsuario int) (int, error) {
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			IDLocal int `json:"id_local"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/locales/usuario/%d", idUsuario), nil, &resp); err != nil {
		return 0, err
	}
	if !resp.Success || resp.Data.IDLocal == 0 {
		return 0, fmt.Errorf("no local is associated with user %d", idUsuario)
	}
	return resp.Data.IDLocal, nil
}

// CreateProducto creates a product after validating the payload locally.
func (c *Client) CreateProducto(ctx context.Context, payload ProductoPayload) (*Producto, error) {
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	var producto Producto
	if err := c.do(ctx, http.MethodPost, "/producto", payload, &producto); err != nil {
		return nil, err
	}
	return &producto, nil
}

// UpdateProducto replaces a product's editable fields.
func (c *Client) UpdateProducto(ctx context.Context, idProducto int, payload ProductoPayload) (*Producto, error) {
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	var producto Producto
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d", idProducto), payload, &producto); err != nil {
		return nil, err
	}
	return &producto, nil
}

// DeleteProducto removes a product. The singular/plural path split between
// create/delete and list/update is the backend's, not ours.
func (c *Client) DeleteProducto(ctx context.Context, idProducto int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/producto/%d", idProducto), nil, nil)
}
