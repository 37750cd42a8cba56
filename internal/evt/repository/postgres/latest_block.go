package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// LatestBlock returns the stored block with the highest number, if any.
func (r *Repository) LatestBlock(ctx context.Context) (model.BlockRef, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block", err, start)
	}()

	ref, found, err := r.latestBlock(ctx)
	return ref, found, err
}

func (r *Repository) latestBlock(ctx context.Context) (model.BlockRef, bool, error) {
	var (
		id  string
		num int32
	)
	err := r.session.QueryStatement(ctx, render.Statement{Name: render.StmtLatestBlock}, &id, &num)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BlockRef{}, false, nil
	}
	if err != nil {
		return model.BlockRef{}, false, fmt.Errorf("query latest block: %w", err)
	}
	if num < 0 {
		return model.BlockRef{}, false, fmt.Errorf("latest block %s has negative number %d", id, num)
	}
	// block_id is a fixed width column.
	return model.BlockRef{ID: strings.TrimRight(id, " "), Num: uint32(num)}, true, nil
}
