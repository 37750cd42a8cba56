// Package model defines domain models for EVT chain ingestion.
package model

import (
	"encoding/json"
	"time"
)

// Block represents a chain block header persisted to the blocks table.
type Block struct {
	ID        string    `json:"id"`
	Num       uint32    `json:"num"`
	PrevID    string    `json:"prev_id"`
	Timestamp time.Time `json:"timestamp"`
	TrxMRoot  string    `json:"trx_mroot"`
	TrxCount  uint32    `json:"trx_count"`
	Producer  string    `json:"producer"`
}

// Ref returns the identity of the block.
func (b Block) Ref() BlockRef {
	return BlockRef{ID: b.ID, Num: b.Num}
}

// BlockRef identifies a block by id and sequence number.
type BlockRef struct {
	ID  string
	Num uint32
}

// IsZero reports whether the reference points at no block.
func (r BlockRef) IsZero() bool {
	return r.ID == ""
}

// TransactionType is the execution kind of a transaction.
type TransactionType string

// TransactionStatus is the outcome of a transaction.
type TransactionStatus string

const (
	TrxInput   TransactionType = "input"
	TrxSuspend TransactionType = "suspend"

	TrxExecuted TransactionStatus = "executed"
	TrxSoftFail TransactionStatus = "soft_fail"
	TrxHardFail TransactionStatus = "hard_fail"
	TrxDelayed  TransactionStatus = "delayed"
	TrxExpired  TransactionStatus = "expired"
)

// Transaction is the executed outcome of a chain transaction. The owning
// block and the inclusion time come from the enclosing block.
type Transaction struct {
	ID          string            `json:"id"`
	SeqNum      uint32            `json:"seq_num"`
	ActionCount uint32            `json:"action_count"`
	Expiration  time.Time         `json:"expiration"`
	MaxCharge   uint32            `json:"max_charge"`
	Payer       string            `json:"payer"`
	Pending     bool              `json:"pending"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Signatures  []string          `json:"signatures"`
	Keys        []string          `json:"keys"`
	Elapsed     uint32            `json:"elapsed"`
	Charge      uint32            `json:"charge"`
	SuspendName Optional[string]  `json:"suspend_name"`
}

// Action is a single chain action with its payload rendered as JSON.
type Action struct {
	Name   string          `json:"name"`
	Domain string          `json:"domain"`
	Key    string          `json:"key"`
	Data   json.RawMessage `json:"data"`
}
