package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeProfileFingerprint produces a deterministic fingerprint for a set of
// per-column scores. Columns are hashed in name order so the fingerprint is
// stable regardless of computation order.
func ComputeProfileFingerprint(columnScores map[string]float64) Hash {
	names := make([]string, 0, len(columnScores))
	for name := range columnScores {
		names = append(names, name)
	}
	sort.Strings(names)

	var data strings.Builder
	for _, name := range names {
		data.WriteString(name)
		data.WriteString(fmt.Sprintf("%.12g", columnScores[name]))
	}

	return NewHash([]byte(data.String()))
}
