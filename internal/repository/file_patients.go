package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"trauma-registry/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recordExt = ".json"

// FilePatientsRepository stores one JSON file per patient under a base
// directory. Single-writer model: no locking, every read goes to disk.
type FilePatientsRepository struct {
	dir    string
	logger *zap.Logger
}

// NewFilePatientsRepository creates the base directory if needed.
func NewFilePatientsRepository(dir string, logger *zap.Logger) (*FilePatientsRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FilePatientsRepository{dir: dir, logger: logger}, nil
}

// Dir returns the base directory records are stored in.
func (r *FilePatientsRepository) Dir() string {
	return r.dir
}

func (r *FilePatientsRepository) recordPath(id string) string {
	return filepath.Join(r.dir, id+recordExt)
}

func (r *FilePatientsRepository) writeRecord(patient *domain.Patient) error {
	data, err := json.MarshalIndent(patient, "", "  ")
	if err != nil {
		return fmt.Errorf("encode patient %s: %w", patient.ID, err)
	}
	if err := os.WriteFile(r.recordPath(patient.ID), data, 0o644); err != nil {
		return fmt.Errorf("write patient %s: %w", patient.ID, err)
	}
	return nil
}

// Create assigns a fresh UUID, forces recovered=false and persists the
// record. The incoming ID, if any, is discarded.
func (r *FilePatientsRepository) Create(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	p := *patient
	p.ID = uuid.NewString()
	p.Recovered = false
	if err := r.writeRecord(&p); err != nil {
		return nil, err
	}
	r.logger.Info("patient record created", zap.String("id", p.ID))
	return &p, nil
}

// Get reads one record from disk. A missing file is not an error: the
// caller gets (nil, nil).
func (r *FilePatientsRepository) Get(_ context.Context, id string) (*domain.Patient, error) {
	data, err := os.ReadFile(r.recordPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read patient %s: %w", id, err)
	}
	var p domain.Patient
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode patient %s: %w", id, err)
	}
	return &p, nil
}

// List decodes every record file in the directory. A file that cannot be
// read or decoded is logged and skipped so one bad record never hides the
// rest.
func (r *FilePatientsRepository) List(_ context.Context) ([]*domain.Patient, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list data directory %s: %w", r.dir, err)
	}

	patients := make([]*domain.Patient, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		path := filepath.Join(r.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			// The file may have been removed mid-scan by another process.
			r.logger.Warn("skipping unreadable patient record",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		var p domain.Patient
		if err := json.Unmarshal(data, &p); err != nil {
			r.logger.Warn("skipping corrupt patient record",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		patients = append(patients, &p)
	}
	return patients, nil
}

// ListActive returns the records whose recovered flag is still false.
func (r *FilePatientsRepository) ListActive(ctx context.Context) ([]*domain.Patient, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*domain.Patient, 0, len(all))
	for _, p := range all {
		if !p.Recovered {
			active = append(active, p)
		}
	}
	return active, nil
}

// Update overwrites the record file unconditionally. Updating an ID with
// no existing file still writes it (upsert), with a warning since the
// caller expected the record to exist.
func (r *FilePatientsRepository) Update(_ context.Context, patient *domain.Patient) error {
	if patient.ID == "" {
		return fmt.Errorf("update patient: empty id")
	}
	if _, err := os.Stat(r.recordPath(patient.ID)); errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("updating patient with no existing record, creating it",
			zap.String("id", patient.ID))
	}
	return r.writeRecord(patient)
}

// Delete removes the record file. Deleting an absent record is not an
// error, only a logged note.
func (r *FilePatientsRepository) Delete(_ context.Context, id string) error {
	err := os.Remove(r.recordPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("delete of missing patient record ignored", zap.String("id", id))
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete patient %s: %w", id, err)
	}
	r.logger.Info("patient record deleted", zap.String("id", id))
	return nil
}
