package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/admin"
)

// Add prompts for the authoring form fields and submits a new record.
func (a *App) Add(ctx context.Context) {
	form, err := a.promptForm(admin.CertForm{})
	if err != nil {
		a.log.Error(ctx, "error reading form", "error", err)
		return
	}

	a.submit(ctx, form)
}

// Edit pre-populates the form from the stored record and resubmits it under
// the same id.
func (a *App) Edit(ctx context.Context, id string) {
	form, err := a.controller.Edit(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "No certification with id %s\n", id)
		return
	}

	form, err = a.promptForm(form)
	if err != nil {
		a.log.Error(ctx, "error reading form", "error", err)
		return
	}

	a.submit(ctx, form)
}

func (a *App) submit(ctx context.Context, form admin.CertForm) {
	_, err := a.controller.Submit(ctx, form)

	var verr *admin.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintf(a.out, "Field %s: %s\n", f.Field, f.Rule)
		}
		return
	}
	if err != nil {
		a.log.Error(ctx, "error saving certification", "error", err)
		return
	}

	a.showNotice()
	a.List(ctx)
	a.Catalog(ctx)
}

// promptForm walks the user through the form fields. Existing values (edit
// mode) are offered as defaults.
func (a *App) promptForm(current admin.CertForm) (admin.CertForm, error) {
	var err error
	form := current

	if form.Title, err = GetTextWithDefault(a.reader, "Title", current.Title, a.out); err != nil {
		return form, err
	}
	if form.Organization, err = GetTextWithDefault(a.reader, "Organization", current.Organization, a.out); err != nil {
		return form, err
	}
	if form.Year, err = GetTextWithDefault(a.reader, "Year", current.Year, a.out); err != nil {
		return form, err
	}
	if form.Description, err = GetTextWithDefault(a.reader, "Description", current.Description, a.out); err != nil {
		return form, err
	}
	if form.LinkURL, err = GetTextWithDefault(a.reader, "Certificate link URL", current.LinkURL, a.out); err != nil {
		return form, err
	}
	if form.VerifyURL, err = GetTextWithDefault(a.reader, "Verification URL", current.VerifyURL, a.out); err != nil {
		return form, err
	}

	if GetConfirmation(a.reader, "Show in public catalog?", a.out) {
		form.Enabled = "on"
	} else {
		form.Enabled = ""
	}

	return form, nil
}
