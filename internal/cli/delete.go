package cli

import (
	"context"
	"fmt"
)

// Delete removes a record after an explicit confirmation naming its title.
func (a *App) Delete(ctx context.Context, id string) {
	deleted, err := a.controller.Delete(ctx, id, func(title string) bool {
		return GetConfirmation(a.reader, fmt.Sprintf("Delete %q?", title), a.out)
	})
	if err != nil {
		a.log.Error(ctx, "error deleting certification", "error", err)
		return
	}
	if !deleted {
		fmt.Fprintln(a.out, "Nothing deleted.")
		return
	}

	a.showNotice()
	a.List(ctx)
	a.Catalog(ctx)
}
