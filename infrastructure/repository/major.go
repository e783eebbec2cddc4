// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/dataset"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/pkg/utils"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

type MajorRepository interface {
	Snapshot() (*domain.DatasetSnapshot, error)
	ListMajors() ([]domain.MajorRecord, error)
	Reload(ctx context.Context) (*domain.DatasetSnapshot, error)
}

// majorRepository mantém o snapshot atual em memória. Cada carga cria um snapshot
// novo e a troca é atômica, então quem leu o anterior continua com ele inteiro.
type majorRepository struct {
	source  string
	options dataset.Options
	current atomic.Pointer[domain.DatasetSnapshot]
}

func NewMajorRepository(cfg config.Dataset) MajorRepository {
	return &majorRepository{
		source:  cfg.Path,
		options: dataset.Options{Strict: cfg.Strict},
	}
}

func (r *majorRepository) Snapshot() (*domain.DatasetSnapshot, error) {
	snapshot := r.current.Load()
	if snapshot == nil {
		return nil, ErrDatasetNotLoaded
	}
	return snapshot, nil
}

func (r *majorRepository) ListMajors() ([]domain.MajorRecord, error) {
	snapshot, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(snapshot.Records), nil
}

// Reload lê o arquivo novamente. Em caso de erro o snapshot anterior é mantido.
func (r *majorRepository) Reload(ctx context.Context) (*domain.DatasetSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := dataset.LoadFile(r.source, r.options)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.DatasetSnapshot{
		ID:       id,
		Source:   r.source,
		LoadedAt: time.Now(),
		Records:  result.Records,
		Skipped:  len(result.Skipped),
	}

	previous := r.current.Swap(snapshot)

	fields := logrus.Fields{
		"snapshot_id": snapshot.ID,
		"source":      snapshot.Source,
		"records":     snapshot.Len(),
		"skipped":     snapshot.Skipped,
	}
	if previous != nil {
		fields["previous_snapshot_id"] = previous.ID
	}
	logrus.WithFields(fields).Info("Dataset de cursos carregado")

	return snapshot, nil
}
