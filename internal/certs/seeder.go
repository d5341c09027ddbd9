package certs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/storage"
)

// Seeder writes the built-in certification collection on first run.
type Seeder struct {
	backend storage.Backend
	log     logging.Logger
}

func NewSeeder(backend storage.Backend, log logging.Logger) *Seeder {
	return &Seeder{backend: backend, log: log}
}

// SeedIfEmpty populates the store with the default records if and only if
// the certifications key has never been written. An existing key is left
// alone even when it holds an empty collection, so the check is on key
// existence, not content. Safe to call on every start.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	_, err := s.backend.Get(ctx, common.CertificationsKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to check certifications key: %w", err)
	}

	defaults := DefaultCertifications()
	raw, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to encode default certifications: %w", err)
	}
	if err := s.backend.Set(ctx, common.CertificationsKey, raw); err != nil {
		return fmt.Errorf("failed to seed certifications: %w", err)
	}

	s.log.Info(ctx, "seeded default certifications", "count", len(defaults))
	return nil
}
