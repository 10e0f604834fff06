package CountTable

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Hasher maps a key to a 64-bit value; a table takes hash%capacity as the bucket index.
// Implementations must be deterministic for the lifetime of the table using them.
type Hasher interface {
	Sum64(key string) uint64
}

// HashFunc lets a plain function be used as a Hasher.
type HashFunc func(string) uint64

func (f HashFunc) Sum64(key string) uint64 {
	return f(key)
}

// Default is the strategy a table falls back to when none is given.
var Default Hasher = HashFunc(OneAtATime)

// OneAtATime is Jenkins' one-at-a-time hash. The 32-bit result is widened to 64 bits.
// Like a C string, the key ends at its first zero byte.
func OneAtATime(key string) uint64 {
	var v uint32
	for i := 0; i < len(key) && key[i] != 0; i++ {
		v += uint32(key[i])
		v += v << 10
		v ^= v >> 6
	}
	v += v << 3
	v ^= v >> 11
	v += v << 15
	return uint64(v)
}

// DJB2 is Bernstein's acc*33+c hash starting from 5381. The key ends at its first zero byte.
func DJB2(key string) uint64 {
	acc := uint64(5381)
	for i := 0; i < len(key) && key[i] != 0; i++ {
		acc = acc<<5 + acc + uint64(key[i])
	}
	return acc
}

// Seeded hashes with the runtime's string hash. Different seeds give unrelated results, so a Seeded must not change while a table uses it.
type Seeded struct {
	Seed maphash.Seed
}

func NewSeeded() Seeded {
	return Seeded{maphash.MakeSeed()}
}

func (u Seeded) Sum64(key string) uint64 {
	return maphash.String(u.Seed, key)
}

// XXHash is xxh64 with seed 0.
type XXHash struct{}

func (XXHash) Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}

// SipHash is SipHash-2-4 keyed by K0 and K1.
type SipHash struct {
	K0, K1 uint64
}

func (u SipHash) Sum64(key string) uint64 {
	return siphash.Hash(u.K0, u.K1, []byte(key))
}

// Blake2b takes the first 8 bytes of the BLAKE2b-256 digest, little endian. Slow; useful when the keys are adversarial.
type Blake2b struct{}

func (Blake2b) Sum64(key string) uint64 {
	sum := blake2b.Sum256([]byte(key))
	return binary.LittleEndian.Uint64(sum[:8])
}

// ByName returns the strategy registered under name, case-insensitively.
func ByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", "oaat", "jenkins":
		return HashFunc(OneAtATime), nil
	case "djb2":
		return HashFunc(DJB2), nil
	case "xxhash":
		return XXHash{}, nil
	case "siphash":
		return SipHash{}, nil
	case "blake2b":
		return Blake2b{}, nil
	case "maphash":
		return NewSeeded(), nil
	}
	return nil, fmt.Errorf("unknown hash %q", name)
}
