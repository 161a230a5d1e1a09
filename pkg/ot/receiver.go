package ot

import (
	"fmt"
	"io"

	"github.com/optable/ot/internal/crypto"
	"github.com/optable/ot/internal/group"
)

// Receiver learns the message at its choice bit and nothing about the
// other one. It is single shot.
type Receiver struct {
	suite  Suite
	g      group.Group
	b      group.Scalar
	A      group.Element
	B      group.Element
	choice uint8
	done   bool
}

// NewReceiver decodes the sender point A, samples the receiver secret b
// from rand and computes B = g^b when choice is 0 or B = g^b + A when
// choice is 1.
func NewReceiver(rand io.Reader, suite Suite, peer []byte, choice uint8) (*Receiver, error) {
	if rand == nil {
		return nil, ErrNilRandom
	}
	if choice > 1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidChoice, choice)
	}

	g, err := suite.newGroup()
	if err != nil {
		return nil, err
	}

	A, err := g.Decode(peer)
	if err != nil {
		return nil, fmt.Errorf("decoding sender point: %w", err)
	}

	b, err := g.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("sampling receiver secret: %w", err)
	}

	B := g.Base(b)
	if choice == 1 {
		// B = A + bG
		B = B.Add(A)
	}

	return &Receiver{suite: suite, g: g, b: b, A: A, B: B, choice: choice}, nil
}

// PublicKey returns the encoded point B to send to the sender
func (r *Receiver) PublicKey() []byte {
	return r.B.Encode()
}

// Choice returns the choice bit of the receiver
func (r *Receiver) Choice() uint8 {
	return r.choice
}

// Decrypt decrypts both ciphertexts with KDF(A^b). Only the guess at the
// choice bit is the sender's plaintext, the other one is meaningless bytes.
// Telling them apart is left to the caller, see Chosen.
func (r *Receiver) Decrypt(c0, c1 []byte) (m0, m1 []byte, err error) {
	if r.done {
		return nil, nil, ErrReceiverFinalized
	}
	r.done = true
	defer r.b.Zero()

	key, err := crypto.DeriveKey(r.suite.KDF, r.A.Multiply(r.b))
	if err != nil {
		return nil, nil, err
	}

	if m0, err = crypto.Decrypt(r.suite.Cipher, key, c0); err != nil {
		return nil, nil, fmt.Errorf("error decrypting sender message: %w", err)
	}
	if m1, err = crypto.Decrypt(r.suite.Cipher, key, c1); err != nil {
		return nil, nil, fmt.Errorf("error decrypting sender message: %w", err)
	}

	return m0, m1, nil
}

// Chosen returns the guess indexed by the choice bit
func (r *Receiver) Chosen(m0, m1 []byte) []byte {
	if r.choice == 1 {
		return m1
	}
	return m0
}
