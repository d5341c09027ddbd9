// Package catalog derives the public certification listing from the record
// store: only enabled records, in their stored order.
package catalog

import (
	"context"

	"github.com/svarma-dev/certfolio/internal/certs"
	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/models"
)

// Renderer produces the public view models consumed by the rendering layer.
type Renderer struct {
	store *certs.RecordStore
}

func NewRenderer(store *certs.RecordStore) *Renderer {
	return &Renderer{store: store}
}

// Render returns the enabled records projected to PublicCertView, preserving
// their relative order. When no record is enabled it returns
// common.ErrNoEnabledCerts so callers can show an explicit empty state
// instead of mistaking it for "not yet loaded".
func (r *Renderer) Render(ctx context.Context) ([]models.PublicCertView, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.PublicCertView, 0, len(all))
	for _, cert := range all {
		if !cert.Enabled {
			continue
		}
		views = append(views, cert.PublicView())
	}

	if len(views) == 0 {
		return nil, common.ErrNoEnabledCerts
	}
	return views, nil
}
