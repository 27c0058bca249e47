package repository

import (
	"context"

	"trauma-registry/internal/domain"
)

// PatientsRepository persists clinical records, one file per record.
// Uses strongly typed domain models, no map[string]any.
type PatientsRepository interface {
	// Create assigns a fresh ID, persists the record and returns it.
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)

	// Get returns (nil, nil) when no record exists for id.
	Get(ctx context.Context, id string) (*domain.Patient, error)

	// List returns every readable record; corrupt files are skipped.
	List(ctx context.Context) ([]*domain.Patient, error)

	// ListActive returns the records not yet marked recovered.
	ListActive(ctx context.Context) ([]*domain.Patient, error)

	// Update overwrites the record keyed by patient.ID (upsert).
	Update(ctx context.Context, patient *domain.Patient) error

	// Delete removes the record; a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
