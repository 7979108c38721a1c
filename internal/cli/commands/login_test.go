package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
	"github.com/papilon-app/papilon-cli/internal/cli/config"
	"github.com/papilon-app/papilon-cli/internal/cli/session"
)

// newTestDeps wires the command dependencies to an in-memory session store and
// a mock backend.
func newTestDeps(t *testing.T, handler http.Handler) (*deps, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewStore(session.NewMemoryKV())
	sessions.Initialize()

	out := &bytes.Buffer{}
	return &deps{
		cfg:      &config.Config{APIURL: srv.URL},
		sessions: sessions,
		api:      client.New(srv.URL, sessions, zerolog.Nop()),
		out:      out,
	}, out
}

// loginBackend answers POST /login for one known user.
func loginBackend(t *testing.T, tipoUsuario string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Empty(t, r.Header.Get("Authorization"), "login must be sent unauthenticated")

		var req client.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.UsuarioNombre != "ana" || req.Password != "x" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "bad credentials"}`))
			return
		}

		json.NewEncoder(w).Encode(client.LoginResponse{
			Message:     "ok",
			Token:       "T1",
			IDUsuario:   7,
			TipoUsuario: tipoUsuario,
		})
	})
}

func TestRunLogin_LocalUserEstablishesSession(t *testing.T) {
	d, out := newTestDeps(t, loginBackend(t, "local"))

	err := runLogin(d, "ana", "x", "local")

	require.NoError(t, err)
	assert.Equal(t, session.Session{
		IsAuthenticated: true,
		Token:           "T1",
		UserID:          7,
		UserType:        "local",
	}, d.sessions.Current())
	assert.Contains(t, out.String(), "Login successful")
}

func TestRunLogin_StandardUserIsRejectedWithoutSession(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "standard"))

	err := runLogin(d, "ana", "x", "local")

	require.ErrorIs(t, err, ErrSoloLocales)
	assert.Equal(t, "Solo los usuarios locales pueden iniciar sesión.", err.Error())
	assert.Equal(t, session.Session{}, d.sessions.Current())
}

func TestRunLogin_BackendErrorSurfacedVerbatim(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "local"))

	err := runLogin(d, "ana", "wrong", "local")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad credentials", err.Error())
	assert.Equal(t, session.Session{}, d.sessions.Current())
}

func TestRunLogin_TransportFailure(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	d := &deps{
		cfg:      &config.Config{APIURL: "http://127.0.0.1:1"},
		sessions: sessions,
		api:      client.New("http://127.0.0.1:1", sessions, zerolog.Nop()),
		out:      &bytes.Buffer{},
	}

	err := runLogin(d, "ana", "x", "local")

	assert.ErrorIs(t, err, client.ErrConexion)
	assert.Equal(t, session.Session{}, d.sessions.Current())
}

func TestRunLogin_BothLoginTypesUseTheSameCall(t *testing.T) {
	for _, loginType := range []string{"local", "standard"} {
		t.Run(loginType, func(t *testing.T) {
			d, _ := newTestDeps(t, loginBackend(t, "local"))

			err := runLogin(d, "ana", "x", loginType)

			require.NoError(t, err)
			assert.True(t, d.sessions.Current().IsAuthenticated)
		})
	}
}

func TestRunLogin_MissingUsername(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "local"))

	err := runLogin(d, "", "x", "local")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestRunLogin_InvalidLoginType(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "local"))

	err := runLogin(d, "ana", "x", "admin")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid login type")
}

func TestRunLogin_CredentialsFromEnv(t *testing.T) {
	d, _ := newTestDeps(t, loginBackend(t, "local"))
	t.Setenv("PAPILON_USERNAME", "ana")
	t.Setenv("PAPILON_PASSWORD", "x")

	err := runLogin(d, "", "", "local")

	require.NoError(t, err)
	assert.True(t, d.sessions.Current().IsAuthenticated)
}

func TestRunLogout_ClearsSession(t *testing.T) {
	d, out := newTestDeps(t, loginBackend(t, "local"))
	require.NoError(t, runLogin(d, "ana", "x", "local"))

	require.NoError(t, runLogout(d))

	assert.Equal(t, session.Session{}, d.sessions.Current())
	assert.Contains(t, out.String(), "Logged out")

	// Logging out while logged out stays a no-op.
	require.NoError(t, runLogout(d))
}

func TestNewLoginCmd_Flags(t *testing.T) {
	cmd := NewLoginCmd()

	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("username"))
	assert.NotNil(t, cmd.Flags().Lookup("password"))

	typeFlag := cmd.Flags().Lookup("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "local", typeFlag.DefValue)
}
