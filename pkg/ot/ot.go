// Package ot implements 1-out-of-2 oblivious transfer over a prime order
// elliptic curve group, the "simplest OT" of Chou and Orlandi.
//
// A Sender holding two messages publishes A = g^a. A Receiver with choice
// bit c answers with B = g^b, or B = g^b + A when c = 1. The Sender
// encrypts message 0 under KDF(B^a) and message 1 under KDF((B - A)^a);
// the Receiver can only derive KDF(A^b), the key of the chosen message.
package ot

import (
	"errors"
	"fmt"

	"github.com/optable/ot/internal/crypto"
	"github.com/optable/ot/internal/group"
)

var (
	ErrNilRandom         = errors.New("a randomness source is required")
	ErrInvalidChoice     = errors.New("choice bits should be binary")
	ErrSenderFinalized   = errors.New("sender already encrypted its messages")
	ErrReceiverFinalized = errors.New("receiver already decrypted its messages")
	ErrKeyCollision      = errors.New("keys derived for both messages are equal")

	ErrRandomness    = group.ErrRandomness
	ErrInvalidPoint  = group.ErrInvalidPoint
	ErrUnknownGroup  = group.ErrUnknownGroup
	ErrUnknownCipher = crypto.ErrUnknownCipher
	ErrUnknownKDF    = crypto.ErrUnknownKDF
)

// groups
const (
	Edwards25519 = group.Edwards25519
	Ristretto255 = group.Ristretto255
	RistrettoGR  = group.RistrettoGR
)

// stream ciphers
const (
	ChaCha8   = crypto.ChaCha8
	ChaCha20  = crypto.ChaCha20
	XORBlake3 = crypto.XORBlake3
	XORBlake2 = crypto.XORBlake2
)

// key derivation functions
const (
	KDFBlake3 = crypto.KDFBlake3
	KDFHKDF   = crypto.KDFHKDF
)

// Suite is the set of primitives both parties of a transfer agree on.
// Parties using different suites silently fail to decrypt.
type Suite struct {
	Group  group.ID
	Cipher crypto.Cipher
	KDF    crypto.KDF
}

// DefaultSuite is edwards25519, ChaCha8 and the BLAKE3 KDF
var DefaultSuite = Suite{Group: Edwards25519, Cipher: ChaCha8, KDF: KDFBlake3}

// ParseSuite builds a Suite from the names of its primitives
func ParseSuite(groupName, cipherName, kdfName string) (s Suite, err error) {
	if s.Group, err = group.Parse(groupName); err != nil {
		return Suite{}, err
	}
	if s.Cipher, err = crypto.ParseCipher(cipherName); err != nil {
		return Suite{}, err
	}
	if s.KDF, err = crypto.ParseKDF(kdfName); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// newGroup validates the suite and returns its group
func (s Suite) newGroup() (group.Group, error) {
	g, err := group.New(s.Group)
	if err != nil {
		return nil, err
	}
	if s.Cipher.String() == "undefined" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, s.Cipher)
	}
	if s.KDF.String() == "undefined" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKDF, s.KDF)
	}
	return g, nil
}

func (s Suite) String() string {
	return s.Group.String() + "/" + s.Cipher.String() + "/" + s.KDF.String()
}

// Message represent a pair of messages
// where an OT receiver with choice bit 0 will
// correctly decode the first message
// and an OT receiver with choice bit 1 will
// correctly decode the second message
type Message [2][]byte

func clone(b []byte) []byte {
	return append(make([]byte, 0, len(b)), b...)
}
