package hash

import (
	"encoding/binary"
	"errors"
	"fmt"
	gohash "hash"

	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
)

/*
Non cryptographic hashes used to fingerprint public protocol values,
for instance to correlate the log lines of both parties of one transfer.
Never feed them secrets.
*/

const (
	SaltLength = 32

	Murmur3 = iota
	Metro
	Highway
)

var (
	ErrUnknownHash        = errors.New("cannot create a hasher of unknown hash type")
	ErrSaltLengthMismatch = fmt.Errorf("provided salt is not %d length", SaltLength)
)

// Hasher hashes a sequence of byte strings to 64 bits. Every part is
// length prefixed so that different splits of the same bytes differ.
type Hasher interface {
	Hash64(parts ...[]byte) uint64
}

// New creates a hasher of type t
func New(t int, salt []byte) (Hasher, error) {
	if len(salt) != SaltLength {
		return nil, ErrSaltLengthMismatch
	}

	switch t {
	case Murmur3:
		return salted{salt: salt, new: func() gohash.Hash64 { return murmur3.New64() }}, nil
	case Metro:
		return salted{salt: salt, new: func() gohash.Hash64 { return metrohash.NewMetroHash64() }}, nil
	case Highway:
		// keyed by the salt rather than prefixed with it
		if _, err := highwayhash.New64(salt); err != nil {
			return nil, err
		}
		return salted{new: func() gohash.Hash64 {
			h, _ := highwayhash.New64(salt)
			return h
		}}, nil
	default:
		return nil, ErrUnknownHash
	}
}

// Parse returns the hash type called name
func Parse(name string) (int, error) {
	for _, t := range []int{Murmur3, Metro, Highway} {
		if Name(t) == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownHash, name)
}

// Name returns the name of the hash type t
func Name(t int) string {
	switch t {
	case Murmur3:
		return "murmur3"
	case Metro:
		return "metro"
	case Highway:
		return "highway"
	default:
		return "undefined"
	}
}

// salted prefixes the salt to the bytes being summed
type salted struct {
	salt []byte
	new  func() gohash.Hash64
}

func (s salted) Hash64(parts ...[]byte) uint64 {
	h := s.new()
	h.Write(s.salt)

	var l [4]byte
	for _, p := range parts {
		binary.BigEndian.PutUint32(l[:], uint32(len(p)))
		h.Write(l[:])
		h.Write(p)
	}
	return h.Sum64()
}
