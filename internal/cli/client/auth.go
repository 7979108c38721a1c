package client

import (
	"context"
	"fmt"
	"net/http"
)

// LoginType is the account class declared in the login form.
type LoginType string

const (
	LoginTypeLocal    LoginType = "local"
	LoginTypeStandard LoginType = "standard"
)

// LoginRequest is the credential exchange body.
type LoginRequest struct {
	UsuarioNombre string `json:"usuario_nombre"`
	Password      string `json:"password"`
}

// LoginResponse is the backend's answer to a successful credential exchange.
// TipoUsuario is the backend's classification of the account, not the type the
// user selected in the form.
type LoginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	IDUsuario   int    `json:"id_usuario"`
	TipoUsuario string `json:"tipo_usuario"`
}

// Login exchanges credentials for a token. The request is always sent
// unauthenticated. Both login types currently issue the identical call; the
// selector is validated and kept for a second endpoint that was planned but
// never wired up on the backend.
func (c *Client) Login(ctx context.Context, usuarioNombre, password string, loginType LoginType) (*LoginResponse, error) {
	switch loginType {
	case LoginTypeLocal, LoginTypeStandard:
	default:
		return nil, fmt.Errorf("unknown login type %q", loginType)
	}

	req := LoginRequest{
		UsuarioNombre: usuarioNombre,
		Password:      password,
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
