// Package certs implements the certification record store and its default
// seeder. The whole collection lives under a single key in the injected
// storage backend and is rewritten on every mutation, which keeps each
// operation a single synchronous read-modify-write.
package certs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/svarma-dev/certfolio/internal/common"
	"github.com/svarma-dev/certfolio/internal/logging"
	"github.com/svarma-dev/certfolio/internal/models"
	"github.com/svarma-dev/certfolio/internal/storage"
)

// RecordStore is typed CRUD over the persisted certification collection.
// Insertion order is preserved and doubles as display order.
type RecordStore struct {
	backend storage.Backend
	log     logging.Logger
}

func NewRecordStore(backend storage.Backend, log logging.Logger) *RecordStore {
	return &RecordStore{backend: backend, log: log}
}

// List returns the full collection in insertion order. An absent key yields
// an empty slice. Stored data that fails to decode is treated as an empty
// collection rather than an error, so a corrupted value can never take the
// rest of the application down.
func (s *RecordStore) List(ctx context.Context) ([]models.Certification, error) {
	raw, err := s.backend.Get(ctx, common.CertificationsKey)
	if errors.Is(err, common.ErrNotFound) {
		return []models.Certification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read certifications: %w", err)
	}

	var certs []models.Certification
	if err := json.Unmarshal(raw, &certs); err != nil {
		s.log.Warn(ctx, "stored certifications are malformed, treating as empty", "error", err)
		return []models.Certification{}, nil
	}
	if certs == nil {
		certs = []models.Certification{}
	}
	return certs, nil
}

// Upsert replaces the record with the same id in place, or appends when the
// id is new, then persists the whole collection.
func (s *RecordStore) Upsert(ctx context.Context, cert models.Certification) error {
	certs, err := s.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range certs {
		if certs[i].ID == cert.ID {
			certs[i] = cert
			replaced = true
			break
		}
	}
	if !replaced {
		certs = append(certs, cert)
	}

	return s.persist(ctx, certs)
}

// Remove deletes the record with the given id. A missing id is a no-op, not
// an error.
func (s *RecordStore) Remove(ctx context.Context, id string) error {
	certs, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Certification, 0, len(certs))
	for _, c := range certs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return s.persist(ctx, kept)
}

func (s *RecordStore) persist(ctx context.Context, certs []models.Certification) error {
	raw, err := json.Marshal(certs)
	if err != nil {
		return fmt.Errorf("failed to encode certifications: %w", err)
	}
	if err := s.backend.Set(ctx, common.CertificationsKey, raw); err != nil {
		return fmt.Errorf("failed to persist certifications: %w", err)
	}
	return nil
}
