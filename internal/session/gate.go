// Package session implements the owner session gate: a single persisted
// boolean flag toggled by a local credential check.
//
// This is a client-side-only gate, faithful to the original site: the
// credentials live in configuration and the flag sits in the same local
// store as the rest of the data, so anyone with access to the process or
// the store can flip it. It keeps casual visitors out of the authoring
// surface and does not pretend to be real authentication.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/storage"
)

// loggedInValue is the literal stored under the session key while an owner
// session is active. The key is absent otherwise.
const loggedInValue = "true"

// Gate guards the authoring surface behind the configured owner credentials.
type Gate struct {
	backend  storage.Backend
	ownerID  string
	password string
}

func NewGate(backend storage.Backend, ownerID, password string) *Gate {
	return &Gate{backend: backend, ownerID: ownerID, password: password}
}

// IsAuthenticated reports whether an owner session is currently persisted.
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	value, err := g.backend.Get(ctx, common.OwnerLoggedInKey)
	if err != nil {
		return false
	}
	return string(value) == loggedInValue
}

// Login compares the supplied credentials against the configured pair and
// persists the session flag on match. On mismatch it returns
// common.ErrInvalidCredentials and leaves the flag untouched.
func (g *Gate) Login(ctx context.Context, ownerID, password string) error {
	idOK := subtle.ConstantTimeCompare([]byte(ownerID), []byte(g.ownerID)) == 1
	pwOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !idOK || !pwOK {
		return common.ErrInvalidCredentials
	}

	if err := g.backend.Set(ctx, common.OwnerLoggedInKey, []byte(loggedInValue)); err != nil {
		return fmt.Errorf("failed to persist session flag: %w", err)
	}
	return nil
}

// Logout clears the session flag unconditionally. Logging out when no
// session is active is not an error.
func (g *Gate) Logout(ctx context.Context) error {
	err := g.backend.Delete(ctx, common.OwnerLoggedInKey)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}
	return nil
}
