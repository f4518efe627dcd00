// Package digest provides the hash functions used to fingerprint blocks.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Set of digest names the node knows about.
const (
	StrategySHA256    = "sha256"
	StrategyKeccak256 = "keccak256"
)

// Digester represents the behavior required to turn a block payload into a
// fixed size, lower case hex string. Implementations must be deterministic.
type Digester interface {
	Digest(payload string) string
}

// =============================================================================

// SHA256 produces a 64 character hex digest using sha256.
type SHA256 struct{}

// Digest implements the Digester interface.
func (SHA256) Digest(payload string) string {
	hash := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(hash[:])
}

// Keccak256 produces a 64 character hex digest using the Ethereum flavor
// of sha3.
type Keccak256 struct{}

// Digest implements the Digester interface.
func (Keccak256) Digest(payload string) string {
	return common.Bytes2Hex(crypto.Keccak256([]byte(payload)))
}

// =============================================================================

var digesters = map[string]Digester{
	StrategySHA256:    SHA256{},
	StrategyKeccak256: Keccak256{},
}

// Retrieve returns the digester for the specified name.
func Retrieve(name string) (Digester, error) {
	d, exists := digesters[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("digest %q does not exist", name)
	}

	return d, nil
}
