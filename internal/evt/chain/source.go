// Package chain defines the records delivered by the chain execution component
// and the sources that feed them to the ingestion pipeline.
package chain

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
)

// ErrNoNewBlock is returned by a following source that has caught up with its feed.
var ErrNoNewBlock = errors.New("no new block")

// Source delivers executed blocks in chain order. Next returns io.EOF once the
// feed is exhausted.
type Source interface {
	Next(ctx context.Context) (*Block, error)
}

// Block is one executed block with its transactions. Irreversible lists ids of
// earlier blocks that reached finality with this block.
type Block struct {
	Block        model.Block
	Transactions []Transaction
	Irreversible []string
}

// Transaction is an executed transaction with its actions in execution order.
type Transaction struct {
	Transaction model.Transaction
	Actions     []model.Action
}

// ActionCount returns the number of actions across all transactions.
func (b *Block) ActionCount() int {
	n := 0
	for _, trx := range b.Transactions {
		n += len(trx.Actions)
	}
	return n
}
