package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"trauma-registry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *FilePatientsRepository {
	t.Helper()
	repo, err := NewFilePatientsRepository(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return repo
}

func testPatient() *domain.Patient {
	surgery := domain.NewDate(2024, time.June, 10)
	return &domain.Patient{
		Name:      "Ana Morales",
		Age:       42,
		RUT:       "12345678-5",
		Dominance: domain.DominanceRight,
		Injury: &domain.Injury{
			Name:         "TENORRAFIA EXTENSORES MANO",
			OfficialCode: "21 04 107",
			Diagnosis:    "Sección tendinosa zona VI",
		},
		SurgeryDelayDays: 14,
		SurgeryDate:      &surgery,
		SurgeryType:      "Primaria",
	}
}

func TestCreateGet_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Recovered)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestGet_Missing(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList_SkipsCorruptFiles(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)
	second, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)

	// A half-written record must not break the listing.
	corrupt := filepath.Join(repo.Dir(), "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o644))
	// Non-record files in the directory are ignored entirely.
	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir(), "notes.txt"), []byte("x"), 0o644))

	patients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 2)

	ids := []string{patients[0].ID, patients[1].ID}
	assert.Contains(t, ids, second.ID)
}

func TestListActive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	active, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)
	recovered, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)

	recovered.Recovered = true
	require.NoError(t, repo.Update(ctx, recovered))

	got, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)
}

func TestUpdate_OverwritesInPlace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)

	created.Name = "Ana M. Morales"
	created.Recovered = true
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana M. Morales", got.Name)
	assert.True(t, got.Recovered)

	// The ID never changes on update, so there is still exactly one file.
	patients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestUpdate_MissingRecordUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ghost := testPatient()
	ghost.ID = "previously-deleted"
	require.NoError(t, repo.Update(ctx, ghost))

	got, err := repo.Get(ctx, "previously-deleted")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ghost.Name, got.Name)
}

func TestUpdate_EmptyID(t *testing.T) {
	repo := newTestRepo(t)
	assert.Error(t, repo.Update(context.Background(), testPatient()))
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testPatient())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op, never an error.
	require.NoError(t, repo.Delete(ctx, created.ID))
}

func TestCreate_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	repo, err := NewFilePatientsRepository(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err = repo.Create(context.Background(), testPatient())
	assert.Error(t, err)
}
