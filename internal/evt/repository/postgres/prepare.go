package postgres

import (
	"context"
	"fmt"
	"time"
)

// PrepareStatements registers every named statement on the session.
func (r *Repository) PrepareStatements(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("prepare_statements", err, start)
	}()

	if err = r.session.PrepareAll(ctx); err != nil {
		return fmt.Errorf("prepare statements: %w", err)
	}
	return nil
}
