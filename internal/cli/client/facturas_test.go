package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacturasByUsuario_UnwrapsEnvelope(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/facturas/usuario/7", r.URL.Path)
		w.Write([]byte(`{"facturas":[{"id_factura":3,"id_cliente":9,"estado":"pendiente","total":150.5}]}`))
	}))

	facturas, err := api.FacturasByUsuario(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, facturas, 1)
	assert.Equal(t, 3, facturas[0].IDFactura)
	assert.Equal(t, "pendiente", facturas[0].Estado)
	assert.Equal(t, 150.5, facturas[0].Total)
}

func TestCreateFactura_ValidationHappensBeforeAnyRequest(t *testing.T) {
	requests := 0
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	cases := []struct {
		name string
		req  CreateFacturaRequest
	}{
		{
			name: "missing client",
			req: CreateFacturaRequest{
				IDUsuarioLocal:  7,
				Estado:          "pendiente",
				DetalleFacturas: []DetalleFactura{{IDProducto: 1, PrecioUnitario: 10, Cantidad: 1}},
			},
		},
		{
			name: "missing estado",
			req: CreateFacturaRequest{
				IDCliente:       9,
				IDUsuarioLocal:  7,
				DetalleFacturas: []DetalleFactura{{IDProducto: 1, PrecioUnitario: 10, Cantidad: 1}},
			},
		},
		{
			name: "no line items",
			req: CreateFacturaRequest{
				IDCliente:      9,
				IDUsuarioLocal: 7,
				Estado:         "pendiente",
			},
		},
		{
			name: "zero quantity",
			req: CreateFacturaRequest{
				IDCliente:       9,
				IDUsuarioLocal:  7,
				Estado:          "pendiente",
				DetalleFacturas: []DetalleFactura{{IDProducto: 1, PrecioUnitario: 10, Cantidad: 0}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := api.CreateFactura(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
	assert.Zero(t, requests, "invalid invoices must not reach the backend")
}

func TestCreateFactura_ReturnsStoredInvoice(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/facturas", r.URL.Path)

		var req CreateFacturaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 9, req.IDCliente)
		assert.Equal(t, 7, req.IDUsuarioLocal)

		w.Write([]byte(`{"message":"ok","factura":{"id_factura":11,"id_cliente":9,"id_local":4,"estado":"pendiente","total":20}}`))
	}))

	factura, err := api.CreateFactura(context.Background(), CreateFacturaRequest{
		IDCliente:       9,
		IDUsuarioLocal:  7,
		Estado:          "pendiente",
		Total:           20,
		DetalleFacturas: []DetalleFactura{{IDProducto: 1, PrecioUnitario: 10, Cantidad: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 11, factura.IDFactura)
}

func TestUpdateFacturaEstado_SendsExplicitNulls(t *testing.T) {
	var body map[string]json.RawMessage
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/facturas/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id_factura":3,"estado":"pagada"}`))
	}))

	factura, err := api.UpdateFacturaEstado(context.Background(), 3, "pagada")

	require.NoError(t, err)
	assert.Equal(t, "pagada", factura.Estado)
	assert.JSONEq(t, `"pagada"`, string(body["estado"]))
	assert.JSONEq(t, `null`, string(body["total"]))
	assert.JSONEq(t, `null`, string(body["puntos_ganados"]))
}

func TestFacturasByLocal(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/facturas/local/4", r.URL.Path)
		w.Write([]byte(`[{"id_factura":3,"id_cliente":9,"id_local":4,"estado":"pagada","total":20},
			{"id_factura":5,"id_cliente":12,"id_local":4,"estado":"pendiente","total":8}]`))
	}))

	facturas, err := api.FacturasByLocal(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, facturas, 2)
	assert.Equal(t, 3, facturas[0].IDFactura)
	assert.Equal(t, "pendiente", facturas[1].Estado)
}

func TestDeleteFactura(t *testing.T) {
	var gotMethod, gotPath string
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"message":"deleted"}`))
	}))

	err := api.DeleteFactura(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/facturas/3", gotPath)
}

func TestLocalByUsuario(t *testing.T) {
	t.Run("resolves id_local", func(t *testing.T) {
		api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/locales/usuario/7", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":{"id_local":4}}`))
		}))

		idLocal, err := api.LocalByUsuario(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, 4, idLocal)
	})

	t.Run("unsuccessful response", func(t *testing.T) {
		api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"data":{}}`))
		}))

		_, err := api.LocalByUsuario(context.Background(), 7)

		assert.Error(t, err)
	})
}

func TestCanjesByUsuario_UnwrapsEnvelope(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/canjes/local/usuario/7", r.URL.Path)
		w.Write([]byte(`{"canjes":[{"id_canje":2,"id_cliente":9,"estado":"pendiente","puntos_utilizados":120,
			"local":{"id_local":4,"nombre_local":"Cafetería Sol","direccion":"Av. Central 12"},
			"detalles":[{"id_detalle_canje":1,"id_producto":5,"cantidad":1,"puntos_totales":120,
				"producto":{"id_producto":5,"nombre":"Café","puntos_necesario":120}}]}]}`))
	}))

	canjes, err := api.CanjesByUsuario(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, canjes, 1)
	assert.Equal(t, "Cafetería Sol", canjes[0].Local.NombreLocal)
	require.Len(t, canjes[0].Detalles, 1)
	assert.Equal(t, "Café", canjes[0].Detalles[0].Producto.Nombre)
}
