package admin

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarma-dev/certfolio/internal/certs"
	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/models"
	"github.com/svarma-dev/certfolio/internal/storage"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestController(t *testing.T) (*Controller, *certs.RecordStore) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	store := certs.NewRecordStore(backend, testLogger())
	ctrl := NewController(store, NewNotice(time.Second), testLogger())
	return ctrl, store
}

func validForm() CertForm {
	return CertForm{
		Enabled:      "on",
		Title:        "Go Fundamentals",
		Organization: "Gophers Inc",
		Year:         "2026",
		Description:  "Introductory course",
		LinkURL:      "https://example.com/cert.png",
		VerifyURL:    "https://example.com/verify",
	}
}

func TestSubmit_CreatesRecordWithSynthesizedID(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	ctrl.now = func() time.Time { return time.UnixMilli(1700000000000) }

	cert, err := ctrl.Submit(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", cert.ID)
	assert.True(t, cert.Enabled)
	assert.Nil(t, cert.CertFile)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, cert, all[0])

	assert.Equal(t, "Certification saved successfully.", ctrl.Notice().Text())
}

func TestSubmit_SameTimestampFallsBackToUUID(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	ctrl.now = func() time.Time { return time.UnixMilli(1700000000000) }

	first, err := ctrl.Submit(ctx, validForm())
	require.NoError(t, err)

	second, err := ctrl.Submit(ctx, validForm())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	all, err := ctrl.ListAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmit_KeepsPrepopulatedID(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	form := validForm()
	_, err := ctrl.Submit(ctx, form)
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	form.ID = all[0].ID
	form.Title = "Go Fundamentals v2"
	form.Enabled = ""

	updated, err := ctrl.Submit(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, all[0].ID, updated.ID)
	assert.False(t, updated.Enabled)

	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "editing must replace, not append")
	assert.Equal(t, "Go Fundamentals v2", all[0].Title)
}

func TestSubmit_ValidationError(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	form := validForm()
	form.Title = ""
	form.Organization = ""

	_, err := ctrl.Submit(ctx, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "Title", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Rule)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed validation must not persist anything")
}

func TestEdit_PopulatesFormFromRecord(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	cert := models.Certification{
		ID:           "cert-042",
		Enabled:      true,
		Title:        "Kubernetes Basics",
		Organization: "CNCF",
		Year:         "2025",
		Description:  "Intro",
		LinkURL:      "https://example.com/k8s.png",
	}
	require.NoError(t, store.Upsert(ctx, cert))

	form, err := ctrl.Edit(ctx, "cert-042")
	require.NoError(t, err)
	assert.Equal(t, "cert-042", form.ID)
	assert.Equal(t, "on", form.Enabled)
	assert.Equal(t, "Kubernetes Basics", form.Title)
	assert.Equal(t, "https://example.com/k8s.png", form.LinkURL)

	_, err = ctrl.Edit(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, models.Certification{ID: "a", Title: "Keep me"}))

	var asked string
	deleted, err := ctrl.Delete(ctx, "a", func(title string) bool {
		asked = title
		return false
	})
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "Keep me", asked)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "declined confirmation must not mutate the store")

	deleted, err = ctrl.Delete(ctx, "a", func(string) bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	ctrl, _ := newTestController(t)

	deleted, err := ctrl.Delete(context.Background(), "nope", func(string) bool {
		t.Fatal("confirm must not be called for an absent id")
		return true
	})
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListAdmin_ProjectsAllRecords(t *testing.T) {
	ctrl, store := newTestController(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, models.Certification{ID: "a", Title: "A", Organization: "OrgA", Year: "2024", Enabled: true}))
	require.NoError(t, store.Upsert(ctx, models.Certification{ID: "b", Title: "B", Organization: "OrgB", Year: "2025"}))

	views, err := ctrl.ListAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, models.AdminCertView{ID: "a", Title: "A", Organization: "OrgA", Year: "2024", Enabled: true}, views[0])
	assert.False(t, views[1].Enabled)
}
