// Package admin implements the authoring controller: it translates form
// submissions into record store mutations and produces the owner-facing list
// projections. The controller is only reachable behind the session gate, but
// does not enforce the gate itself (the gate is presentation-level, see the
// session package).
package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/svarma-dev/certfolio/internal/certs"
	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/models"
)

// Controller binds the authoring form to record store CRUD.
type Controller struct {
	store    *certs.RecordStore
	notice   *Notice
	validate *validator.Validate
	log      logging.Logger

	// now is a test seam for id synthesis.
	now func() time.Time
}

func NewController(store *certs.RecordStore, notice *Notice, log logging.Logger) *Controller {
	return &Controller{
		store:    store,
		notice:   notice,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Notice exposes the transient status message for the rendering layer.
func (c *Controller) Notice() *Notice {
	return c.notice
}

// Submit validates the form, builds a typed record and upserts it. A
// pre-populated id is kept (edit mode); otherwise a new one is synthesized
// from the current timestamp, with a uuid fallback should that id already be
// taken. Returns the persisted record.
func (c *Controller) Submit(ctx context.Context, form CertForm) (models.Certification, error) {
	if err := validateForm(c.validate, form); err != nil {
		return models.Certification{}, err
	}

	id := form.ID
	if id == "" {
		var err error
		id, err = c.newID(ctx)
		if err != nil {
			return models.Certification{}, err
		}
	}

	cert := models.Certification{
		ID:           id,
		Enabled:      checkboxChecked(form.Enabled),
		Title:        form.Title,
		Organization: form.Organization,
		Year:         form.Year,
		Description:  form.Description,
		LinkURL:      form.LinkURL,
		VerifyURL:    form.VerifyURL,
		CertFile:     nil,
	}

	if err := c.store.Upsert(ctx, cert); err != nil {
		return models.Certification{}, err
	}

	c.log.Info(ctx, "certification saved", "id", cert.ID, "title", cert.Title)
	c.notice.Set("Certification saved successfully.")
	return cert, nil
}

// Edit returns the form fields pre-populated from the stored record, so the
// rendering layer can fill the form for editing. It does not mutate the
// store. Returns common.ErrNotFound when the id is gone.
func (c *Controller) Edit(ctx context.Context, id string) (CertForm, error) {
	cert, err := c.find(ctx, id)
	if err != nil {
		return CertForm{}, err
	}
	return formFromCert(cert), nil
}

// Delete removes the record with the given id after the confirm callback,
// invoked with the record title, returns true. Reports whether a record was
// actually removed. A missing id is not an error.
func (c *Controller) Delete(ctx context.Context, id string, confirm func(title string) bool) (bool, error) {
	cert, err := c.find(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !confirm(cert.Title) {
		return false, nil
	}

	if err := c.store.Remove(ctx, id); err != nil {
		return false, err
	}

	c.log.Info(ctx, "certification deleted", "id", id)
	c.notice.Set("Certification deleted.")
	return true, nil
}

// ClearForm posts the form-cleared status message. The actual field reset
// happens in the rendering layer.
func (c *Controller) ClearForm() {
	c.notice.Set("Form cleared.")
}

// ListAdmin returns the management-list projections for all records,
// enabled or not, in insertion order.
func (c *Controller) ListAdmin(ctx context.Context) ([]models.AdminCertView, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.AdminCertView, 0, len(all))
	for _, cert := range all {
		views = append(views, cert.AdminView())
	}
	return views, nil
}

func (c *Controller) find(ctx context.Context, id string) (models.Certification, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return models.Certification{}, err
	}
	for _, cert := range all {
		if cert.ID == id {
			return cert, nil
		}
	}
	return models.Certification{}, common.ErrNotFound
}

// newID synthesizes a record id from the current timestamp, matching the ids
// the site generated historically. If two saves land on the same millisecond
// the uuid fallback keeps ids unique.
func (c *Controller) newID(ctx context.Context) (string, error) {
	id := strconv.FormatInt(c.now().UnixMilli(), 10)

	if _, err := c.find(ctx, id); err == nil {
		return uuid.NewString(), nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("failed to check id uniqueness: %w", err)
	}
	return id, nil
}
