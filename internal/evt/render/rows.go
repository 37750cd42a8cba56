package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/pkg/safe"
)

// Table names.
const (
	TableStats        = "stats"
	TableBlocks       = "blocks"
	TableTransactions = "transactions"
	TableMetas        = "metas"
	TableActions      = "actions"
	TableDomains      = "domains"
	TableTokens       = "tokens"
	TableGroups       = "groups"
	TableFungibles    = "fungibles"

	SequenceMetaID = "metas_id_seq"
)

// Column order of the bulk-loaded tables. created_at is left to its default.
var (
	BlockColumns = []string{
		"block_id", "block_num", "prev_block_id", "timestamp", "trx_merkle_root",
		"trx_count", "producer", "pending",
	}
	TransactionColumns = []string{
		"trx_id", "seq_num", "block_id", "block_num", "action_count", "timestamp",
		"expiration", "max_charge", "payer", "pending", "type", "status",
		"signatures", "keys", "elapsed", "charge", "suspend_name",
	}
	ActionColumns = []string{
		"block_id", "block_num", "trx_id", "seq_num", "name", "domain", "key", "data",
	}
)

// BlockRow encodes a block for the blocks table. Blocks are inserted pending
// and flipped once they become irreversible.
func BlockRow(b model.Block) ([]byte, error) {
	num, err := safe.Int32(b.Num)
	if err != nil {
		return nil, fmt.Errorf("block %s num: %w", b.ID, err)
	}
	trxCount, err := safe.Int32(b.TrxCount)
	if err != nil {
		return nil, fmt.Errorf("block %s trx count: %w", b.ID, err)
	}

	var r Row
	r.Text(b.ID).
		Int(int64(num)).
		Text(b.PrevID).
		Time(b.Timestamp).
		Text(b.TrxMRoot).
		Int(int64(trxCount)).
		Text(b.Producer).
		Bool(true)
	return r.Line(), nil
}

// TransactionRow encodes a transaction of block b for the transactions table.
func TransactionRow(b model.Block, trx model.Transaction) ([]byte, error) {
	ints, err := int32s(b.Num, trx.SeqNum, trx.ActionCount, trx.MaxCharge, trx.Elapsed, trx.Charge)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", trx.ID, err)
	}

	var r Row
	r.Text(trx.ID).
		Int(ints[1]).
		Text(b.ID).
		Int(ints[0]).
		Int(ints[2]).
		Time(b.Timestamp).
		Time(trx.Expiration).
		Int(ints[3]).
		Text(trx.Payer).
		Bool(trx.Pending).
		Text(string(trx.Type)).
		Text(string(trx.Status)).
		TextArray(trx.Signatures).
		TextArray(trx.Keys).
		Int(ints[4]).
		Int(ints[5])
	if name, ok := trx.SuspendName.Get(); ok {
		r.Text(name)
	} else {
		r.Null()
	}
	return r.Line(), nil
}

// ActionRow encodes the seq-th action of transaction trxID in block b.
func ActionRow(b model.Block, trxID string, seq int, act model.Action) ([]byte, error) {
	num, err := safe.Int32(b.Num)
	if err != nil {
		return nil, fmt.Errorf("action %s/%d block num: %w", trxID, seq, err)
	}
	seqNum, err := safe.Int32(seq)
	if err != nil {
		return nil, fmt.Errorf("action %s/%d seq: %w", trxID, seq, err)
	}
	data, err := compactJSON(act.Data, "{}")
	if err != nil {
		return nil, fmt.Errorf("action %s/%d data: %w", trxID, seq, err)
	}

	var r Row
	r.Text(b.ID).
		Int(int64(num)).
		Text(trxID).
		Int(int64(seqNum)).
		Text(act.Name).
		Text(act.Domain).
		Text(act.Key).
		Text(data)
	return r.Line(), nil
}

func int32s(values ...uint32) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		n, err := safe.Int32(v)
		if err != nil {
			return nil, err
		}
		out[i] = int64(n)
	}
	return out, nil
}

func compactJSON(raw json.RawMessage, empty string) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return empty, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
