package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/common"
)

// List renders the owner's management view: every record, enabled or not.
func (a *App) List(ctx context.Context) {
	views, err := a.controller.ListAdmin(ctx)
	if err != nil {
		a.log.Error(ctx, "error listing certifications", "error", err)
		return
	}

	if len(views) == 0 {
		fmt.Fprintln(a.out, "No certifications added yet.")
		return
	}

	for _, v := range views {
		badge := "Disabled"
		if v.Enabled {
			badge = "Enabled"
		}
		fmt.Fprintf(a.out, "%s  %s — %s (%s) [%s]\n", v.ID, v.Title, v.Organization, v.Year, badge)
	}
}

// Catalog renders the public listing: enabled records only.
func (a *App) Catalog(ctx context.Context) {
	views, err := a.renderer.Render(ctx)
	if errors.Is(err, common.ErrNoEnabledCerts) {
		fmt.Fprintln(a.out, "No certifications enabled yet.")
		return
	}
	if err != nil {
		a.log.Error(ctx, "error rendering catalog", "error", err)
		return
	}

	for _, v := range views {
		fmt.Fprintf(a.out, "* %s", v.Title)
		if v.HasViewAction {
			fmt.Fprintf(a.out, "  [view: %s]", v.ViewTarget)
		}
		if v.HasVerifyAction {
			fmt.Fprintf(a.out, "  [verify: %s]", v.VerifyTarget)
		}
		fmt.Fprintln(a.out)
	}
}
