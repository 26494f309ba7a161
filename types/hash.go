// Package types holds the value types shared by every verifier package:
// Hash32, HashAlgo, the checkpoint and proof shapes, and the inbound
// JSON DTOs an HTTP SDK layer would decode into them.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash32 is an opaque 32-byte value: a header hash, MMR node, root, or
// salted leaf. It marshals as a lowercase "0x"-prefixed hex string and
// compares equal regardless of the case it was parsed from.
type Hash32 [32]byte

// parseHex strips an optional "0x"/"0X" prefix and decodes the
// remainder as hex. Both Hash32 (fixed-width) and HexBytes
// (variable-width) wire values use this same "0x"-prefixed-hex
// convention; only the length check differs between them.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("types: %q: %w", s, err)
	}
	return b, nil
}

// ParseHash32 decodes a "0x"-prefixed (or bare) hex string into a Hash32.
func ParseHash32(s string) (Hash32, error) {
	var h Hash32
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(trimmed) != 64 {
		return h, fmt.Errorf("types: hash32 %q: want 64 hex chars, got %d", s, len(trimmed))
	}
	b, err := parseHex(s)
	if err != nil {
		return h, fmt.Errorf("types: hash32 %q: %w", s, err)
	}
	copy(h[:], b)
	return h, nil
}

// String renders the canonical lowercase "0x"-prefixed form.
func (h Hash32) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Bytes returns the underlying 32 bytes as a slice.
func (h Hash32) Bytes() []byte {
	return h[:]
}

// IsZero reports whether every byte is zero.
func (h Hash32) IsZero() bool {
	return h == Hash32{}
}

func (h Hash32) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

func (h *Hash32) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("types: hash32: invalid json string %s", data)
	}
	parsed, err := ParseHash32(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HashAlgo selects both the pair-hash function and the leaf-salting rule
// an MmrProof was built with. This is a closed, two-value set: there is
// no registration point for a third algorithm.
type HashAlgo int

const (
	// Keccak selects keccak256 for pair-hash, leaf-salting, and
	// size-binding.
	Keccak HashAlgo = iota
	// Poseidon selects the Starknet-native Poseidon hash.
	Poseidon
)

func (a HashAlgo) String() string {
	switch a {
	case Keccak:
		return "keccak"
	case Poseidon:
		return "poseidon"
	default:
		return fmt.Sprintf("HashAlgo(%d)", int(a))
	}
}

func ParseHashAlgo(s string) (HashAlgo, error) {
	switch strings.ToLower(s) {
	case "keccak":
		return Keccak, nil
	case "poseidon":
		return Poseidon, nil
	default:
		return 0, fmt.Errorf("types: unknown hash algo %q", s)
	}
}

func (a HashAlgo) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *HashAlgo) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("types: hashalgo: invalid json string %s", data)
	}
	parsed, err := ParseHashAlgo(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
