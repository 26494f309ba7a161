package types

import (
	"encoding/hex"
	"fmt"
)

// HexBytes is Hash32's variable-length sibling: an MPT proof node, an
// RLP-encoded transaction, or an opaque proof word, using the same
// "0x"-prefixed-hex wire convention but with no fixed width to check.
type HexBytes []byte

func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	s := "0x" + hex.EncodeToString(b)
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out, nil
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("types: hexbytes: invalid json string %s", data)
	}
	decoded, err := parseHex(string(data[1 : len(data)-1]))
	if err != nil {
		return fmt.Errorf("types: hexbytes: %w", err)
	}
	*b = decoded
	return nil
}
