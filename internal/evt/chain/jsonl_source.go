package chain

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
)

// JSONLinesConfig configures a JSONLinesSource.
type JSONLinesConfig struct {
	// MaxBlocksPerSecond throttles delivery; zero means unlimited.
	MaxBlocksPerSecond int
	// Follow makes the source report ErrNoNewBlock instead of io.EOF when the
	// feed has no complete line left, so a growing file can be tailed.
	Follow bool
}

// JSONLinesSource reads one JSON encoded block per line.
type JSONLinesSource struct {
	r       *bufio.Reader
	rl      ratelimit.Limiter
	follow  bool
	partial []byte
	line    int
}

type feedBlock struct {
	model.Block
	Transactions []feedTransaction `json:"transactions"`
	Irreversible []string          `json:"irreversible"`
}

type feedTransaction struct {
	model.Transaction
	Actions []model.Action `json:"actions"`
}

// NewJSONLinesSource creates a source reading from r.
func NewJSONLinesSource(r io.Reader, cfg JSONLinesConfig) *JSONLinesSource {
	rl := ratelimit.NewUnlimited()
	if cfg.MaxBlocksPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxBlocksPerSecond)
	}
	return &JSONLinesSource{
		r:      bufio.NewReader(r),
		rl:     rl,
		follow: cfg.Follow,
	}
}

// Next returns the next block of the feed.
func (s *JSONLinesSource) Next(ctx context.Context) (*Block, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		s.line++
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		block, err := decodeBlock(line)
		if err != nil {
			return nil, fmt.Errorf("feed line %d: %w", s.line, err)
		}
		s.rl.Take()
		return block, nil
	}
}

// readLine returns the next complete line. A trailing line without a newline
// is only returned once the feed is known to be finished.
func (s *JSONLinesSource) readLine() ([]byte, error) {
	chunk, err := s.r.ReadBytes('\n')
	s.partial = append(s.partial, chunk...)
	switch {
	case err == nil:
		line := s.partial
		s.partial = nil
		return line, nil
	case errors.Is(err, io.EOF):
		if s.follow {
			return nil, ErrNoNewBlock
		}
		if len(s.partial) == 0 {
			return nil, io.EOF
		}
		line := s.partial
		s.partial = nil
		return line, nil
	default:
		return nil, fmt.Errorf("read feed: %w", err)
	}
}

func decodeBlock(line []byte) (*Block, error) {
	var fb feedBlock
	if err := json.Unmarshal(line, &fb); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	if fb.ID == "" {
		return nil, errors.New("block id is empty")
	}
	if len(fb.Transactions) > math.MaxInt32 {
		return nil, fmt.Errorf("block %s has too many transactions", fb.ID)
	}

	block := &Block{
		Block:        fb.Block,
		Transactions: make([]Transaction, 0, len(fb.Transactions)),
		Irreversible: fb.Irreversible,
	}
	block.Block.TrxCount = uint32(len(fb.Transactions))
	for _, ft := range fb.Transactions {
		if len(ft.Actions) > math.MaxInt32 {
			return nil, fmt.Errorf("transaction %s has too many actions", ft.ID)
		}
		trx := ft.Transaction
		trx.ActionCount = uint32(len(ft.Actions))
		block.Transactions = append(block.Transactions, Transaction{
			Transaction: trx,
			Actions:     ft.Actions,
		})
	}
	return block, nil
}
