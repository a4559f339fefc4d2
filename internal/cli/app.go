// Package cli provides the interactive CourseMate command-line client.
//
// It wires configuration, the on-device database, domain stores, and the
// state controller behind an interactive REPL. Typical flow: bootstrap
// persisted state, then execute user commands until exit.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"strconv"

	"github.com/coursemate/coursemate/internal/accounts"
	"github.com/coursemate/coursemate/internal/catalog"
	"github.com/coursemate/coursemate/internal/config"
	"github.com/coursemate/coursemate/internal/controller"
	"github.com/coursemate/coursemate/internal/favourites"
	"github.com/coursemate/coursemate/internal/logging"
	"github.com/coursemate/coursemate/internal/prefs"
	"github.com/coursemate/coursemate/internal/session"
	"github.com/coursemate/coursemate/internal/storage"
)

// App is the interactive client. It owns the database handle and the
// controller, and renders state snapshots to out.
type App struct {
	config *config.Config
	ctrl   *controller.Controller
	log    logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the on-device database, wires the domain stores and the
// controller, and rehydrates persisted state.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	directory := accounts.NewDirectory(store)
	sessions := session.NewManager(directory, store)
	favs := favourites.NewStore(store)
	preferences := prefs.NewStore(store)
	cat := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)

	ctrl := controller.New(sessions, favs, preferences, cat, log)
	ctrl.Bootstrap(ctx)

	return &App{
		config: cfg,
		ctrl:   ctrl,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Controller exposes the underlying state controller, mainly for observers.
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.State().Session != nil
}

// status renders the prompt suffix: current user, favourites count and theme.
func (a *App) status() string {
	s := a.ctrl.State()
	out := ""
	if s.Session != nil {
		out = s.Session.Username
	}
	if n := len(s.Favourites); n > 0 {
		if out != "" {
			out += " "
		}
		out += "★" + strconv.Itoa(n)
	}
	if s.DarkMode {
		if out != "" {
			out += " "
		}
		out += "dark"
	}
	if out != "" {
		out = "(" + out + ")"
	}
	return out
}
