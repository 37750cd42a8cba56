package postgres

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// CommitCopy bulk loads the buffered rows: blocks, then transactions, then
// actions. Empty row sets are skipped. The first failure aborts the commit.
func (r *Repository) CommitCopy(ctx context.Context, buf *CopyBuffer) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("commit_copy", err, start)
	}()

	steps := []struct {
		table   string
		columns []string
		rows    *rowSet
	}{
		{table: render.TableBlocks, columns: render.BlockColumns, rows: &buf.blocks},
		{table: render.TableTransactions, columns: render.TransactionColumns, rows: &buf.transactions},
		{table: render.TableActions, columns: render.ActionColumns, rows: &buf.actions},
	}

	for _, step := range steps {
		if step.rows.rows == 0 {
			continue
		}
		var n int64
		n, err = r.session.Copy(ctx, step.table, step.columns, bytes.NewReader(step.rows.buf.Bytes()))
		if err != nil {
			return fmt.Errorf("copy %s: %w", step.table, err)
		}
		if n != int64(step.rows.rows) {
			err = fmt.Errorf("copy %s: loaded %d rows, want %d", step.table, n, step.rows.rows)
			return err
		}
	}
	return nil
}
