package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/chain"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/repository/postgres"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		CreateSchemaIfAbsent(ctx context.Context) error
		PrepareStatements(ctx context.Context) error
		ReadStat(ctx context.Context, key string) (string, bool, error)
		InitializeCheckpoint(ctx context.Context) error
		CheckVersionCompatible(ctx context.Context) error
		CheckSyncConsistency(ctx context.Context) (model.BlockRef, error)
		TableIsEmpty(ctx context.Context, table string) (bool, error)
		ExistsBlock(ctx context.Context, id string) (bool, error)
		CommitCopy(ctx context.Context, buf *postgres.CopyBuffer) error
		CommitMutations(ctx context.Context, batch *postgres.MutationBatch) error
	}
	Source interface {
		Next(ctx context.Context) (*chain.Block, error)
	}
	Metrics interface {
		ObserveBlock(err error, actions int, started time.Time)
		SetHead(num uint32)
	}
)
