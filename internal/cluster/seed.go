package cluster

import (
	"crypto/rand"
	"encoding/binary"
)

// systemSeed draws a seed from a system entropy source for callers that
// do not supply their own RNG, following the same crypto/rand-to-ChaCha8
// handoff used elsewhere in this codebase for reproducible-on-request
// random generation.
func systemSeed() [32]byte {
	var seed [32]byte
	var randomBytes [8]byte
	if _, err := rand.Read(randomBytes[:]); err == nil {
		binary.LittleEndian.PutUint64(seed[:8], binary.LittleEndian.Uint64(randomBytes[:]))
	}
	return seed
}
