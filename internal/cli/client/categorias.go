package client

import (
	"context"
	"fmt"
	"net/http"
)

// Categoria is a product category from the platform-wide catalog.
type Categoria struct {
	IDCategoria int     `json:"id_categoria"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	URLImg      *string `json:"url_img"`
}

// Categorias lists all categories.
func (c *Client) Categorias(ctx context.Context) ([]Categoria, error) {
	var categorias []Categoria
	if err := c.do(ctx, http.MethodGet, "/categorias", nil, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

// CategoriaByID fetches one category.
func (c *Client) CategoriaByID(ctx context.Context, idCategoria int) (*Categoria, error) {
	var categoria Categoria
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categoria/%d", idCategoria), nil, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

// CategoriaPayload is the body for creating or updating a category. The
// backend assigns id_categoria.
type CategoriaPayload struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
	URLImg      *string `json:"url_img"`
}

// CreateCategoria creates a category after validating the payload locally.
func (c *Client) CreateCategoria(ctx context.Context, payload CategoriaPayload) (*Categoria, error) {
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	var categoria Categoria
	if err := c.do(ctx, http.MethodPost, "/categoria", payload, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

// UpdateCategoria replaces a category's editable fields.
func (c *Client) UpdateCategoria(ctx context.Context, idCategoria int, payload CategoriaPayload) (*Categoria, error) {
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	var categoria Categoria
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categoria/%d", idCategoria), payload, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

// DeleteCategoria removes a category.
func (c *Client) DeleteCategoria(ctx context.Context, idCategoria int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categoria/%d", idCategoria), nil, nil)
}
