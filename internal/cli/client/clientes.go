package client

import (
	"context"
	"fmt"
	"net/http"
)

// Cliente is an end customer of the loyalty platform.
type Cliente struct {
	IDCliente int    `json:"id_cliente"`
	Nombre    string `json:"nombre"`
}

// Clientes lists all clients.
func (c *Client) Clientes(ctx context.Context) ([]Cliente, error) {
	var clientes []Cliente
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// ClienteByID fetches one client.
func (c *Client) ClienteByID(ctx context.Context, idCliente int) (*Cliente, error) {
	var cliente Cliente
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", idCliente), nil, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// ClienteNombre resolves just a client's display name.
func (c *Client) ClienteNombre(ctx context.Context, idCliente int) (string, error) {
	var resp struct {
		Nombre string `json:"nombre"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d/nombre", idCliente), nil, &resp); err != nil {
		return "", err
	}
	return resp.Nombre, nil
}
