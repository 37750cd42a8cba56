package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// CommitMutations runs the batch in one transaction. Any failure rolls the
// whole batch back. An empty batch opens no transaction.
func (r *Repository) CommitMutations(ctx context.Context, batch *MutationBatch) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("commit_mutations", err, start)
	}()

	err = r.commit(ctx, batch)
	return err
}

func (r *Repository) commit(ctx context.Context, batch *MutationBatch) error {
	if batch.Len() == 0 {
		return nil
	}

	for _, m := range batch.Mutations() {
		for _, name := range statementNames(m) {
			if err := r.session.Prepare(ctx, name); err != nil {
				return err
			}
		}
	}

	tx, err := r.session.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	for i, m := range batch.Mutations() {
		if err = execMutation(ctx, tx, m); err != nil {
			err = fmt.Errorf("mutation %d: %w", i, err)
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func execMutation(ctx context.Context, tx Tx, m render.Mutation) error {
	switch m := m.(type) {
	case render.Statement:
		if _, err := tx.Exec(ctx, m.Name, m.Args...); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
	case render.MetaInsert:
		var id int32
		if err := tx.QueryRow(ctx, m.Insert.Name, m.Insert.Args...).Scan(&id); err != nil {
			return fmt.Errorf("%s: %w", m.Insert.Name, err)
		}
		if _, err := tx.Exec(ctx, m.Owner, id, m.OwnerKey); err != nil {
			return fmt.Errorf("%s: %w", m.Owner, err)
		}
	default:
		return fmt.Errorf("unsupported mutation %T", m)
	}
	return nil
}

func statementNames(m render.Mutation) []string {
	switch m := m.(type) {
	case render.Statement:
		return []string{m.Name}
	case render.MetaInsert:
		return []string{m.Insert.Name, m.Owner}
	default:
		return nil
	}
}
