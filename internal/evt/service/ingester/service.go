// Package ingester drives executed EVT blocks from a chain source into the
// PostgreSQL store, one block per ingestion unit.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/chain"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/repository/postgres"
)

const defaultIdleSleep = time.Second

var (
	// ErrOutOfOrder is returned for a block whose prev_id is not the committed head.
	ErrOutOfOrder = errors.New("block does not link to committed head")
	// ErrForkDetected is returned for a replayed block at or below the resume
	// point that the store does not hold.
	ErrForkDetected = errors.New("replayed block is not stored")
)

// Service ingests blocks from a Source.
type Service struct {
	logger    *zap.Logger
	repo      Repository
	source    Source
	metrics   Metrics
	sleep     func(context.Context, time.Duration) error
	idleSleep time.Duration

	// resume is the checkpoint found at startup, head the last committed block.
	resume model.BlockRef
	head   model.BlockRef
}

// NewService builds a Service. idleSleep is how long Run waits after a
// following source reports no new block.
func NewService(
	repo Repository,
	source Source,
	metrics Metrics,
	idleSleep time.Duration,
	logger *zap.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ingester repository is required")
	}
	if source == nil {
		return nil, errors.New("ingester source is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if idleSleep <= 0 {
		idleSleep = defaultIdleSleep
	}

	return &Service{
		logger:    logger,
		repo:      repo,
		source:    source,
		metrics:   metrics,
		sleep:     clock.SleepWithContext,
		idleSleep: idleSleep,
	}, nil
}

// Prepare creates the schema when absent, registers every statement and
// either stamps a fresh database or verifies the stored version and checkpoint.
func (s *Service) Prepare(ctx context.Context) error {
	if err := s.repo.CreateSchemaIfAbsent(ctx); err != nil {
		return err
	}
	if err := s.repo.PrepareStatements(ctx); err != nil {
		return err
	}

	_, found, err := s.repo.ReadStat(ctx, model.StatVersion)
	if err != nil {
		return err
	}
	empty, err := s.repo.TableIsEmpty(ctx, render.TableBlocks)
	if err != nil {
		return err
	}

	// Only a database without a version and without blocks is fresh. Blocks
	// without a version fail the version check below.
	if !found && empty {
		if err = s.repo.InitializeCheckpoint(ctx); err != nil {
			return err
		}
		s.logger.Info("initialized fresh database", zap.String("version", model.Version))
		s.resume, s.head = model.BlockRef{}, model.BlockRef{}
	} else {
		if err = s.repo.CheckVersionCompatible(ctx); err != nil {
			return err
		}
		var ref model.BlockRef
		if ref, err = s.repo.CheckSyncConsistency(ctx); err != nil {
			return err
		}
		s.resume, s.head = ref, ref
		if !ref.IsZero() {
			s.metrics.SetHead(ref.Num)
		}
		s.logger.Info("resuming", zap.String("block_id", ref.ID), zap.Uint32("block_num", ref.Num))
	}

	if empty {
		s.logger.Info("no blocks stored, genesis block is required")
	}
	return nil
}

// Head returns the last committed block.
func (s *Service) Head() model.BlockRef {
	return s.head
}

// Run ingests blocks until the source is exhausted or ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		block, err := s.source.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			s.logger.Info("feed exhausted", zap.String("head", s.head.ID), zap.Uint32("head_num", s.head.Num))
			return nil
		case errors.Is(err, chain.ErrNoNewBlock):
			if err = s.sleep(ctx, s.idleSleep); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("next block: %w", err)
		}

		if err = s.IngestBlock(ctx, block); err != nil {
			s.logger.Error("ingest block failed",
				zap.String("block_id", block.Block.ID),
				zap.Uint32("block_num", block.Block.Num),
				zap.Error(err),
			)
			return err
		}
	}
}

// IngestBlock commits one block: its rows through bulk load, then its entity
// changes, irreversible marks and the checkpoint advance in one transaction.
func (s *Service) IngestBlock(ctx context.Context, block *chain.Block) (err error) {
	b := block.Block
	actions := block.ActionCount()
	started := time.Now()

	defer func() {
		s.metrics.ObserveBlock(err, actions, started)
	}()

	replayed, err := s.replayed(ctx, b)
	if err != nil || replayed {
		return err
	}

	if !s.head.IsZero() && b.PrevID != s.head.ID {
		return fmt.Errorf("block %d %s prev %s, head %s: %w", b.Num, b.ID, b.PrevID, s.head.ID, ErrOutOfOrder)
	}

	buf, batch, err := s.render(block)
	if err != nil {
		return fmt.Errorf("block %d: %w", b.Num, err)
	}
	if err = s.repo.CommitCopy(ctx, buf); err != nil {
		return fmt.Errorf("block %d: %w", b.Num, err)
	}
	if err = s.repo.CommitMutations(ctx, batch); err != nil {
		return fmt.Errorf("block %d: %w", b.Num, err)
	}

	s.head = b.Ref()
	s.metrics.SetHead(b.Num)
	s.logger.Debug("block committed",
		zap.String("block_id", b.ID),
		zap.Uint32("block_num", b.Num),
		zap.Int("transactions", len(block.Transactions)),
		zap.Int("actions", actions),
		zap.Int("mutations", batch.Len()),
	)
	return nil
}

// replayed reports whether b was committed before the resume point.
func (s *Service) replayed(ctx context.Context, b model.Block) (bool, error) {
	if s.resume.IsZero() || b.Num > s.resume.Num {
		return false, nil
	}
	exists, err := s.repo.ExistsBlock(ctx, b.ID)
	if err != nil {
		return false, fmt.Errorf("block %d: %w", b.Num, err)
	}
	if !exists {
		return false, fmt.Errorf("block %d %s: %w", b.Num, b.ID, ErrForkDetected)
	}
	s.logger.Debug("skipping stored block", zap.String("block_id", b.ID), zap.Uint32("block_num", b.Num))
	return true, nil
}

func (s *Service) render(block *chain.Block) (*postgres.CopyBuffer, *postgres.MutationBatch, error) {
	b := block.Block
	buf := postgres.NewCopyBuffer()
	batch := postgres.NewMutationBatch()

	if err := buf.AddBlock(b); err != nil {
		return nil, nil, err
	}
	for _, trx := range block.Transactions {
		if err := buf.AddTransaction(b, trx.Transaction); err != nil {
			return nil, nil, err
		}
		for seq, act := range trx.Actions {
			if err := buf.AddAction(b, trx.Transaction.ID, seq, act); err != nil {
				return nil, nil, err
			}
			muts, err := render.EntityMutations(act)
			if err != nil {
				return nil, nil, fmt.Errorf("trx %s: %w", trx.Transaction.ID, err)
			}
			batch.Add(muts...)
		}
	}
	batch.MarkIrreversible(block.Irreversible...)
	batch.AdvanceCheckpoint(b.ID)
	return buf, batch, nil
}
