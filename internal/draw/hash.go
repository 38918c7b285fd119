package draw

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// indexBits is the number of digest bits consumed by the index reduction.
// Part of the versioned AlgorithmSHA256Mod32 scheme.
const indexBits = 32

// HashSeed returns the commitment for a seed string: SHA-256, hex-encoded
// lower case, 64 characters.
func HashSeed(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// ReduceToIndex maps a hex digest to an integer in [0, modulus) by parsing the
// first 8 hex characters (32 bits) as an unsigned integer and reducing modulo
// the participant count. The reduction carries a small modulo bias for counts
// that are not powers of two; that bias is an accepted part of the
// AlgorithmSHA256Mod32 scheme and changing it would invalidate every proof
// already published under that tag.
func ReduceToIndex(digestHex string, modulus int) (int, error) {
	if modulus <= 0 {
		return 0, ErrInvalidModulus
	}

	if len(digestHex) < indexBits/4 {
		return 0, ErrInvalidDigest
	}

	value, err := strconv.ParseUint(digestHex[:indexBits/4], 16, indexBits)
	if err != nil {
		return 0, ErrInvalidDigest
	}

	return int(value % uint64(modulus)), nil
}
