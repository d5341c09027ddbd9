package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarma-dev/certfolio/internal/admin"
	"github.com/svarma-dev/certfolio/internal/catalog"
	"github.com/svarma-dev/certfolio/internal/certs"
	"github.com/svarma-dev/certfolio/internal/config"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/models"
	"github.com/svarma-dev/certfolio/internal/session"
	"github.com/svarma-dev/certfolio/internal/storage"
)

// newTestApp wires an App around an in-memory backend, with input/output
// replaced by buffers.
func newTestApp(t *testing.T, input string) (*App, *certs.RecordStore, *bytes.Buffer) {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	backend := storage.NewMemoryBackend()
	store := certs.NewRecordStore(backend, log)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	app := &App{
		config:     cfg,
		gate:       session.NewGate(backend, cfg.OwnerID, cfg.OwnerPassword),
		controller: admin.NewController(store, admin.NewNotice(time.Second), log),
		renderer:   catalog.NewRenderer(store),
		log:        log,
		reader:     bufio.NewReader(strings.NewReader(input)),
		out:        &out,
	}
	return app, store, &out
}

func TestList_EmptyAndPopulated(t *testing.T) {
	app, store, out := newTestApp(t, "")
	ctx := context.Background()

	app.List(ctx)
	assert.Contains(t, out.String(), "No certifications added yet.")

	out.Reset()
	require.NoError(t, store.Upsert(ctx, models.Certification{
		ID: "cert-001", Title: "Web Developer", Organization: "Internshala", Year: "2024", Enabled: true,
	}))
	require.NoError(t, store.Upsert(ctx, models.Certification{
		ID: "cert-002", Title: "Bootstrap", Organization: "Infosys", Year: "2024",
	}))

	app.List(ctx)
	assert.Contains(t, out.String(), "cert-001  Web Developer — Internshala (2024) [Enabled]")
	assert.Contains(t, out.String(), "cert-002  Bootstrap — Infosys (2024) [Disabled]")
}

func TestCatalog_EmptyStateAndActions(t *testing.T) {
	app, store, out := newTestApp(t, "")
	ctx := context.Background()

	app.Catalog(ctx)
	assert.Contains(t, out.String(), "No certifications enabled yet.")

	out.Reset()
	require.NoError(t, store.Upsert(ctx, models.Certification{
		ID: "a", Title: "AWS Solutions Architecture", Enabled: true,
		LinkURL: "https://example.com/aws.png", VerifyURL: "https://example.com/v/aws",
	}))

	app.Catalog(ctx)
	assert.Contains(t, out.String(), "* AWS Solutions Architecture")
	assert.Contains(t, out.String(), "[view: https://example.com/aws.png]")
	assert.Contains(t, out.String(), "[verify: https://example.com/v/aws]")
}

func TestDelete_ConfirmedViaPrompt(t *testing.T) {
	app, store, out := newTestApp(t, "y\n")
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, models.Certification{ID: "a", Title: "Bootstrap"}))

	app.Delete(ctx, "a")

	assert.Contains(t, out.String(), `Delete "Bootstrap"?`)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete_Declined(t *testing.T) {
	app, store, out := newTestApp(t, "n\n")
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, models.Certification{ID: "a", Title: "Bootstrap"}))

	app.Delete(ctx, "a")

	assert.Contains(t, out.String(), "Nothing deleted.")

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLogin_WrongPasswordShowsTransientMessage(t *testing.T) {
	app, _, out := newTestApp(t, "admin\n")
	ctx := context.Background()

	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("wrong"), nil }

	app.Login(ctx)

	assert.Contains(t, out.String(), "Invalid credentials. Try again.")
	assert.False(t, app.gate.IsAuthenticated(ctx))
}

func TestLogin_Success(t *testing.T) {
	app, _, out := newTestApp(t, "admin\n")
	ctx := context.Background()

	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("password123"), nil }

	app.Login(ctx)

	assert.Contains(t, out.String(), "Admin commands unlocked.")
	assert.True(t, app.gate.IsAuthenticated(ctx))
}
