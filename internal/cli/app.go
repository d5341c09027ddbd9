// Package cli is the interactive rendering layer of certfolio: it plays the
// role the page DOM plays for the original site, consuming the view models
// the core produces and feeding form submissions back into it.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/svarma-dev/certfolio/internal/admin"
	"github.com/svarma-dev/certfolio/internal/catalog"
	"github.com/svarma-dev/certfolio/internal/certs"
	"github.com/svarma-dev/certfolio/internal/config"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/session"
	"github.com/svarma-dev/certfolio/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	gate       *session.Gate
	controller *admin.Controller
	renderer   *catalog.Renderer
	log        logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	backend, db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if err := certs.NewSeeder(backend, log).SeedIfEmpty(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := certs.NewRecordStore(backend, log)

	return &App{
		config:     cfg,
		gate:       session.NewGate(backend, cfg.OwnerID, cfg.OwnerPassword),
		controller: admin.NewController(store, admin.NewNotice(cfg.NoticeTTL), log),
		renderer:   catalog.NewRenderer(store),
		log:        log,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
