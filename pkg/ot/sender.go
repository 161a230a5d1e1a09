package ot

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/optable/ot/internal/crypto"
	"github.com/optable/ot/internal/group"
)

// Sender holds the two messages of a transfer. It is used for exactly one
// transfer: Created -> Encrypted.
type Sender struct {
	suite    Suite
	g        group.Group
	a        group.Scalar
	A        group.Element
	messages Message
	done     bool
}

// NewSender samples the sender secret a from rand and computes A = g^a.
// The messages are copied, the caller keeps ownership of m0 and m1.
func NewSender(rand io.Reader, suite Suite, m0, m1 []byte) (*Sender, error) {
	if rand == nil {
		return nil, ErrNilRandom
	}

	g, err := suite.newGroup()
	if err != nil {
		return nil, err
	}

	a, err := g.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("sampling sender secret: %w", err)
	}

	return &Sender{
		suite:    suite,
		g:        g,
		a:        a,
		A:        g.Base(a),
		messages: Message{clone(m0), clone(m1)},
	}, nil
}

// PublicKey returns the encoded point A to send to the receiver
func (s *Sender) PublicKey() []byte {
	return s.A.Encode()
}

// Encrypt derives k0 = KDF(B^a) and k1 = KDF((B - A)^a) from the receiver
// point B and returns m0 encrypted under k0 and m1 encrypted under k1.
// The secret scalar and plaintexts are discarded; any further call fails
// with ErrSenderFinalized, even when this one failed.
func (s *Sender) Encrypt(peer []byte) (c0, c1 []byte, err error) {
	if s.done {
		return nil, nil, ErrSenderFinalized
	}
	s.done = true
	defer s.a.Zero()
	defer func() { s.messages = Message{} }()

	B, err := s.g.Decode(peer)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding receiver point: %w", err)
	}
	// B = A would make (B - A)^a the identity
	if B.Equal(s.A) {
		return nil, nil, fmt.Errorf("%w: receiver point equals sender point", ErrInvalidPoint)
	}

	k0, k1, err := s.keys(B)
	if err != nil {
		return nil, nil, err
	}

	if c0, err = crypto.Encrypt(s.suite.Cipher, k0, s.messages[0]); err != nil {
		return nil, nil, fmt.Errorf("error encrypting sender message: %w", err)
	}
	if c1, err = crypto.Encrypt(s.suite.Cipher, k1, s.messages[1]); err != nil {
		return nil, nil, fmt.Errorf("error encrypting sender message: %w", err)
	}

	return c0, c1, nil
}

// keys returns k0 = KDF(aB) and k1 = KDF(a(B - A)) and checks that they
// differ, both messages are encrypted under the same zero nonce.
func (s *Sender) keys(B group.Element) (k0, k1 []byte, err error) {
	if k0, err = crypto.DeriveKey(s.suite.KDF, B.Multiply(s.a)); err != nil {
		return nil, nil, err
	}
	if k1, err = crypto.DeriveKey(s.suite.KDF, B.Subtract(s.A).Multiply(s.a)); err != nil {
		return nil, nil, err
	}

	if subtle.ConstantTimeCompare(k0, k1) == 1 {
		return nil, nil, ErrKeyCollision
	}
	return k0, k1, nil
}
