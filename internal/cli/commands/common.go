package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
	"github.com/papilon-app/papilon-cli/internal/cli/config"
	"github.com/papilon-app/papilon-cli/internal/cli/session"
	"github.com/papilon-app/papilon-cli/internal/logger"
)

// deps bundles what every command needs: configuration, the session store, and
// the API client wired to it. Tests construct it directly with an in-memory KV
// and a mock backend.
type deps struct {
	cfg      *config.Config
	sessions *session.Store
	api      *client.Client
	out      io.Writer
}

// newDeps builds the production dependency set. The session is reconstructed
// from the OS keyring, so a prior login survives process restarts.
func newDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	sessions := session.NewStore(session.NewKeyringKV())
	sessions.Initialize()

	return &deps{
		cfg:      cfg,
		sessions: sessions,
		api:      client.New(cfg.APIURL, sessions, log),
		out:      os.Stdout,
	}, nil
}

// requireSession guards protected commands. It reads the session fresh at
// command time; without one the command body never runs. Advisory only: the
// backend independently rejects unauthenticated requests.
func (d *deps) requireSession() (session.Session, error) {
	sess := d.sessions.Current()
	if !sess.IsAuthenticated {
		return session.Session{}, errors.New("not authenticated. Please run 'papilon login' first")
	}
	return sess, nil
}

// chooseEstado validates the requested status against the backend-provided
// values, prompting interactively when none was given.
func chooseEstado(estado string, valid []string) (string, error) {
	if len(valid) == 0 {
		return "", errors.New("the backend reported no valid status values")
	}

	if estado != "" {
		for _, v := range valid {
			if v == estado {
				return estado, nil
			}
		}
		return "", fmt.Errorf("invalid estado %q (valid: %s)", estado, strings.Join(valid, ", "))
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("--estado is required in non-interactive mode (valid: %s)", strings.Join(valid, ", "))
	}

	prompt := promptui.Select{
		Label: "Nuevo estado",
		Items: valid,
		Size:  10,
	}
	_, choice, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("estado selection cancelled: %w", err)
	}
	return choice, nil
}

// parseID parses a positional numeric id argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
