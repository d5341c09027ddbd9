package admin

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/svarma-dev/certfolio/internal/models"
)

// CertForm carries the raw authoring form fields. Values are strings the way
// a form submission delivers them; Enabled uses the checkbox encoding ("on"
// when checked, empty otherwise). An empty ID means "create", a populated one
// means "edit".
type CertForm struct {
	ID           string `validate:"-"`
	Enabled      string `validate:"-"`
	Title        string `validate:"required"`
	Organization string `validate:"required"`
	Year         string `validate:"-"`
	Description  string `validate:"-"`
	LinkURL      string `validate:"-"`
	VerifyURL    string `validate:"-"`
}

// FieldError names a single failed form field and the rule it broke.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError is returned by Submit when the form fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// validateForm runs the struct tags through the validator and converts
// failures into a ValidationError.
func validateForm(v *validator.Validate, form CertForm) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// checkboxChecked reports whether a checkbox-encoded value means "checked".
func checkboxChecked(value string) bool {
	return value == "on"
}

// formFromCert populates form fields from an existing record, the reverse of
// Submit's extraction.
func formFromCert(c models.Certification) CertForm {
	enabled := ""
	if c.Enabled {
		enabled = "on"
	}
	return CertForm{
		ID:           c.ID,
		Enabled:      enabled,
		Title:        c.Title,
		Organization: c.Organization,
		Year:         c.Year,
		Description:  c.Description,
		LinkURL:      c.LinkURL,
		VerifyURL:    c.VerifyURL,
	}
}
