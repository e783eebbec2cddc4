package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/infrastructure/dataset"
	"github.com/vfg2006/college-majors-api/internal/config"
)

const header = "Undergraduate Major,Starting Median Salary,Mid-Career Median Salary,Group\n"

func writeDataset(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestMajorRepository_BeforeLoad(t *testing.T) {
	repo := NewMajorRepository(config.Dataset{Path: "unused.csv", Strict: true})

	snapshot, err := repo.Snapshot()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	assert.Nil(t, snapshot)

	records, err := repo.ListMajors()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	assert.Nil(t, records)
}

func TestMajorRepository_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "majors.csv")
	writeDataset(t, path, header+"Computer Science,55900,95000,STEM\nPsychology,35900,60400,HASS\n")

	repo := NewMajorRepository(config.Dataset{Path: path, Strict: true})

	first, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, first.ID, 6)
	assert.Equal(t, path, first.Source)
	assert.Equal(t, 2, first.Len())
	assert.Zero(t, first.Skipped)

	records, err := repo.ListMajors()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Computer Science", records[0].Name)

	t.Run("Alterar a cópia não altera o snapshot", func(t *testing.T) {
		records[0].Name = "changed"

		current, err := repo.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", current.Records[0].Name)
	})

	t.Run("Nova carga substitui o snapshot", func(t *testing.T) {
		writeDataset(t, path, header+"Finance,47900,88300,Business\n")

		second, err := repo.Reload(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 1, second.Len())

		// O snapshot anterior continua íntegro para quem já o possuía
		assert.Equal(t, 2, first.Len())
	})

	t.Run("Falha na carga mantém o snapshot anterior", func(t *testing.T) {
		before, err := repo.Snapshot()
		require.NoError(t, err)

		writeDataset(t, path, header+"Finance,abc,88300,Business\n")

		_, err = repo.Reload(context.Background())
		assert.ErrorIs(t, err, dataset.ErrParse)

		after, err := repo.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID)
	})
}

func TestMajorRepository_ReloadLenient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "majors.csv")
	writeDataset(t, path, header+"Computer Science,55900,95000,STEM\nBroken,x,1,STEM\n")

	repo := NewMajorRepository(config.Dataset{Path: path, Strict: false})

	snapshot, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, 1, snapshot.Skipped)
}

func TestMajorRepository_ReloadMissingFile(t *testing.T) {
	repo := NewMajorRepository(config.Dataset{Path: filepath.Join(t.TempDir(), "none.csv"), Strict: true})

	_, err := repo.Reload(context.Background())
	assert.ErrorIs(t, err, dataset.ErrFileNotFound)
}

func TestMajorRepository_ReloadCanceledContext(t *testing.T) {
	repo := NewMajorRepository(config.Dataset{Path: "unused.csv", Strict: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
