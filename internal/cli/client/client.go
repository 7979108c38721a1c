// Package client is the single choke point for every outbound call to the
// Papilon backend. It injects the current bearer token, decodes the backend's
// structured error bodies, and drops the session when the backend rejects the
// stored token. It never retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/papilon-app/papilon-cli/internal/cli/session"
)

var (
	// ErrConexion covers transport failures where no response reached the
	// client. Its text is the user-facing generic connection message.
	ErrConexion = errors.New("Error al conectar con el servidor")

	// ErrSesionExpirada is returned when the backend rejects the stored token.
	// The session has already been cleared by the time callers see it.
	ErrSesionExpirada = errors.New("la sesión ha expirado; vuelve a iniciar sesión con 'papilon login'")
)

// validate checks request payloads before any network round-trip.
var validate = validator.New(validator.WithRequiredStructEnabled())

// APIError is a structured error reported by the backend. Error() returns the
// backend's message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is an HTTP client for the Papilon backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	log        zerolog.Logger
}

// New creates an API client. The base URL is fixed configuration; it is never
// derived from the session.
func New(baseURL string, sessions *session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessions: sessions,
		log:      log,
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// do sends one request. The token is read fresh from the session store
// immediately before sending; when present it travels as a bearer credential,
// otherwise the request goes out unauthenticated. A non-nil out is filled from
// the JSON response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.sessions.Current().Token
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Bool("authenticated", token != "").
		Msg("backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConexion, err)
	}
	defer resp.Body.Close()

	// A 401 on a request that carried a token means the backend no longer
	// accepts it: clear the session so the next command lands on the login
	// guard. A 401 without a token (the login call itself) is an ordinary
	// backend error and is surfaced verbatim below.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		if err := c.sessions.Logout(); err != nil {
			c.log.Warn().Err(err).Msg("failed to clear rejected session")
		}
		return ErrSesionExpirada
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an APIError, preferring the
// backend's {"error": "..."} message when the body carries one.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(data))),
	}
}
