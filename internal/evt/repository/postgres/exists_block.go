package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// ExistsBlock reports whether a block with the given id is stored.
func (r *Repository) ExistsBlock(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("exists_block", err, start)
	}()

	var exists bool
	st := render.Statement{Name: render.StmtExistsBlock, Args: []any{id}}
	if err = r.session.QueryStatement(ctx, st, &exists); err != nil {
		return false, fmt.Errorf("query block %s: %w", id, err)
	}
	return exists, nil
}
