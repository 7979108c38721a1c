package client

import (
	"context"
	"fmt"
	"net/http"
)

// CanjeProducto is the product summary embedded in a redemption line.
type CanjeProducto struct {
	IDProducto      int    `json:"id_producto"`
	Nombre          string `json:"nombre"`
	PuntosNecesario int    `json:"puntos_necesario"`
}

// DetalleCanje is one redeemed line item.
type DetalleCanje struct {
	IDDetalleCanje int           `json:"id_detalle_canje"`
	IDProducto     int           `json:"id_producto"`
	Cantidad       int           `json:"cantidad"`
	PuntosTotales  int           `json:"puntos_totales"`
	Valor          string        `json:"valor"`
	FechaCreacion  string        `json:"fecha_creacion"`
	Producto       CanjeProducto `json:"producto"`
}

// CanjeLocal is the local business summary embedded in a redemption.
type CanjeLocal struct {
	IDLocal     int    `json:"id_local"`
	NombreLocal string `json:"nombre_local"`
	Direccion   string `json:"direccion"`
}

// Canje is a point redemption linking a client, a local business, and the
// redeemed product lines. Estado is drawn from the backend's estado_canje
// enumeration.
type Canje struct {
	IDCanje          int            `json:"id_canje"`
	IDCliente        int            `json:"id_cliente"`
	IDLocal          int            `json:"id_local"`
	Estado           string         `json:"estado"`
	PuntosUtilizados int            `json:"puntos_utilizados"`
	Fecha            string         `json:"fecha"`
	Local            CanjeLocal     `json:"local"`
	Detalles         []DetalleCanje `json:"detalles"`
}

// CanjesByUsuario lists the redemptions at the local owned by a local user.
func (c *Client) CanjesByUsuario(ctx context.Context, idUsuario int) ([]Canje, error) {
	var resp struct {
		Canjes []Canje `json:"canjes"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/canjes/local/usuario/%d", idUsuario), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Canjes, nil
}

// UpdateCanjeEstado transitions a redemption to a new status.
func (c *Client) UpdateCanjeEstado(ctx context.Context, idCanje int, estado string) error {
	req := struct {
		Estado string `json:"estado"`
	}{Estado: estado}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/canjes/%d", idCanje), req, nil)
}
