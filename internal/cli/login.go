package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/common"
)

func (a *App) Login(ctx context.Context) {

	ownerID, err := GetSimpleText(a.reader, "Enter owner id", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading owner id", "error", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return
	}

	err = a.gate.Login(ctx, ownerID, password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		fmt.Fprintln(a.out, "Invalid credentials. Try again.")
		return
	}
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return
	}

	fmt.Fprintln(a.out, "Welcome back. Admin commands unlocked.")
	a.List(ctx)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.gate.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}
