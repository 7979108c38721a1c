package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
)

func TestRequireSession_Unauthenticated(t *testing.T) {
	d, _ := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the guard must not let any request through")
	}))

	_, err := d.requireSession()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "papilon login")

	// Protected commands stop at the guard.
	assert.Error(t, runFacturasLs(d, false))
	assert.Error(t, runFacturasDelete(d, "1", true))
	assert.Error(t, runProductosLs(d))
	assert.Error(t, runCanjesLs(d))
	assert.Error(t, runClientesLs(d))
	assert.Error(t, runCategoriasCreate(d, client.CategoriaPayload{Nombre: "Bebidas"}))
	assert.Error(t, runCategoriasDelete(d, "1", true))
	assert.Error(t, runWhoami(d))
}

func TestRequireSession_Authenticated(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "local"))
	require.NoError(t, runLogin(d, "ana", "x", "local"))

	sess, err := d.requireSession()

	require.NoError(t, err)
	assert.Equal(t, 7, sess.UserID)
}

func TestChooseEstado(t *testing.T) {
	valid := []string{"pendiente", "pagada", "anulada"}

	t.Run("accepts a valid value", func(t *testing.T) {
		estado, err := chooseEstado("pagada", valid)
		require.NoError(t, err)
		assert.Equal(t, "pagada", estado)
	})

	t.Run("rejects a value outside the enum", func(t *testing.T) {
		_, err := chooseEstado("archivada", valid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid estado")
	})

	t.Run("requires a value without a terminal", func(t *testing.T) {
		// Test processes have no TTY on stdin, so the prompt path is closed.
		_, err := chooseEstado("", valid)
		assert.Error(t, err)
	})

	t.Run("empty enum is an error", func(t *testing.T) {
		_, err := chooseEstado("pagada", nil)
		assert.Error(t, err)
	})
}

func TestParseFacturaLine(t *testing.T) {
	cases := []struct {
		in         string
		idProducto int
		cantidad   int
		wantErr    bool
	}{
		{in: "5:2", idProducto: 5, cantidad: 2},
		{in: "12:1", idProducto: 12, cantidad: 1},
		{in: "5", wantErr: true},
		{in: "x:2", wantErr: true},
		{in: "5:0", wantErr: true},
		{in: "5:-1", wantErr: true},
		{in: "0:2", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			line, err := parseFacturaLine(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.idProducto, line.idProducto)
			assert.Equal(t, tc.cantidad, line.cantidad)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "product")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad, "product")
		assert.Error(t, err, "arg %q", bad)
	}
}
