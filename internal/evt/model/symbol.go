package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Symbol identifies a fungible token class, rendered as "<precision>,S#<id>".
type Symbol struct {
	Precision uint8
	ID        uint32
}

// ParseSymbol parses the "<precision>,S#<id>" form.
func ParseSymbol(s string) (Symbol, error) {
	precision, id, ok := strings.Cut(s, ",S#")
	if !ok {
		return Symbol{}, fmt.Errorf("invalid symbol %q", s)
	}
	p, err := strconv.ParseUint(precision, 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("invalid symbol precision %q: %w", s, err)
	}
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return Symbol{}, fmt.Errorf("invalid symbol id %q: %w", s, err)
	}
	return Symbol{Precision: uint8(p), ID: uint32(n)}, nil
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,S#%d", s.Precision, s.ID)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSymbol(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
