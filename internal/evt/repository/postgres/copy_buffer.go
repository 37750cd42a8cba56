package postgres

import (
	"bytes"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// CopyBuffer collects the append-only rows of one ingestion unit in COPY text
// format, one row set per table.
type CopyBuffer struct {
	blocks       rowSet
	transactions rowSet
	actions      rowSet
}

type rowSet struct {
	buf  bytes.Buffer
	rows int
}

func (s *rowSet) add(line []byte) {
	s.buf.Write(line)
	s.rows++
}

// NewCopyBuffer returns an empty buffer.
func NewCopyBuffer() *CopyBuffer {
	return &CopyBuffer{}
}

// AddBlock appends a blocks row.
func (b *CopyBuffer) AddBlock(block model.Block) error {
	line, err := render.BlockRow(block)
	if err != nil {
		return err
	}
	b.blocks.add(line)
	return nil
}

// AddTransaction appends a transactions row for a transaction of block.
func (b *CopyBuffer) AddTransaction(block model.Block, trx model.Transaction) error {
	line, err := render.TransactionRow(block, trx)
	if err != nil {
		return err
	}
	b.transactions.add(line)
	return nil
}

// AddAction appends an actions row for the seq-th action of transaction trxID.
func (b *CopyBuffer) AddAction(block model.Block, trxID string, seq int, act model.Action) error {
	line, err := render.ActionRow(block, trxID, seq, act)
	if err != nil {
		return err
	}
	b.actions.add(line)
	return nil
}

// Rows returns the number of buffered rows per table.
func (b *CopyBuffer) Rows() (blocks, transactions, actions int) {
	return b.blocks.rows, b.transactions.rows, b.actions.rows
}

// Empty reports whether nothing has been buffered.
func (b *CopyBuffer) Empty() bool {
	return b.blocks.rows == 0 && b.transactions.rows == 0 && b.actions.rows == 0
}
