package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// InitializeCheckpoint writes the schema version of this build and an empty
// sync checkpoint. It is meant for a freshly created schema.
func (r *Repository) InitializeCheckpoint(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("initialize_checkpoint", err, start)
	}()

	batch := NewMutationBatch()
	batch.Add(
		render.InsertStat(model.StatVersion, model.Version),
		render.InsertStat(model.StatLastSyncBlockID, ""),
	)
	if err = r.commit(ctx, batch); err != nil {
		return fmt.Errorf("initialize checkpoint: %w", err)
	}
	return nil
}

// ReadStat returns the value stored under key and whether it exists.
func (r *Repository) ReadStat(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("read_stat", err, start)
	}()

	value, found, err := r.readStat(ctx, key)
	return value, found, err
}

// CheckVersionCompatible fails with ErrVersionMismatch when the stored schema
// version sorts before model.Version.
func (r *Repository) CheckVersionCompatible(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("check_version", err, start)
	}()

	stored, found, err := r.readStat(ctx, model.StatVersion)
	if err != nil {
		return err
	}
	if !found {
		err = ErrVersionMissing
		return err
	}
	if stored < model.Version {
		err = fmt.Errorf("stored %q, running %q: %w", stored, model.Version, ErrVersionMismatch)
		return err
	}
	return nil
}

// CheckSyncConsistency verifies that the sync checkpoint names the latest
// stored block and returns that block as the resume point. Both being empty
// yields a zero reference.
func (r *Repository) CheckSyncConsistency(ctx context.Context) (model.BlockRef, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("check_sync", err, start)
	}()

	lastSync, found, err := r.readStat(ctx, model.StatLastSyncBlockID)
	if err != nil {
		return model.BlockRef{}, err
	}
	if !found {
		err = ErrCheckpointMissing
		return model.BlockRef{}, err
	}

	latest, _, err := r.latestBlock(ctx)
	if err != nil {
		return model.BlockRef{}, err
	}
	if latest.ID != lastSync {
		err = fmt.Errorf("checkpoint %q, latest block %q: %w", lastSync, latest.ID, ErrSyncMismatch)
		return model.BlockRef{}, err
	}
	return latest, nil
}

func (r *Repository) readStat(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.session.QueryStatement(ctx, render.Statement{Name: render.StmtReadStat, Args: []any{key}}, &value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read stat %s: %w", key, err)
	}
	return value, true, nil
}
