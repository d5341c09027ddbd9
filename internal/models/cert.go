// Package models defines the certification record and its derived view
// projections.
package models

// Certification is the sole persisted entity. JSON field names match the
// stored layout one-to-one, so existing data keeps loading unchanged.
type Certification struct {
	ID           string `json:"id"`
	Enabled      bool   `json:"enabled"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Description  string `json:"description"`
	LinkURL      string `json:"linkUrl"`
	VerifyURL    string `json:"verifyUrl"`
	// CertFile is reserved for a future attached certificate file and is
	// always null today.
	CertFile *string `json:"certFile"`
}

// AdminCertView is the projection shown in the owner's management list.
type AdminCertView struct {
	ID           string
	Title        string
	Organization string
	Year         string
	Enabled      bool
}

// PublicCertView is the renderer-facing projection of an enabled record.
// It is derived, never persisted.
type PublicCertView struct {
	Title           string
	HasViewAction   bool
	HasVerifyAction bool
	ViewTarget      string
	VerifyTarget    string
}

// AdminView returns the management-list projection of c.
func (c Certification) AdminView() AdminCertView {
	return AdminCertView{
		ID:           c.ID,
		Title:        c.Title,
		Organization: c.Organization,
		Year:         c.Year,
		Enabled:      c.Enabled,
	}
}

// PublicView returns the catalog projection of c. Actions are exposed only
// when the corresponding URL is present.
func (c Certification) PublicView() PublicCertView {
	return PublicCertView{
		Title:           c.Title,
		HasViewAction:   c.LinkURL != "",
		HasVerifyAction: c.VerifyURL != "",
		ViewTarget:      c.LinkURL,
		VerifyTarget:    c.VerifyURL,
	}
}
