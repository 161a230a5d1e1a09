package ot

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/optable/ot/internal/crypto"
)

var (
	prng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	m0     = []byte("Super secret message 1")
	m1     = []byte("Super secret message 2")
	suites = []Suite{
		{Group: Edwards25519, Cipher: ChaCha8, KDF: KDFBlake3},
		{Group: Ristretto255, Cipher: ChaCha20, KDF: KDFHKDF},
		{Group: RistrettoGR, Cipher: XORBlake3, KDF: KDFBlake3},
	}
)

func newPair(t *testing.T, suite Suite, choice uint8) (*Sender, *Receiver) {
	s, err := NewSender(prng, suite, m0, m1)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewReceiver(prng, suite, s.PublicKey(), choice)
	if err != nil {
		t.Fatal(err)
	}
	return s, r
}

func TestReceiverDerivesOnlyTheChosenKey(t *testing.T) {
	for _, suite := range suites {
		for choice := uint8(0); choice < 2; choice++ {
			s, r := newPair(t, suite, choice)

			B, err := s.g.Decode(r.PublicKey())
			if err != nil {
				t.Fatal(err)
			}
			k0, k1, err := s.keys(B)
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(k0, k1) {
				t.Fatalf("%s: k0 == k1", suite)
			}

			key, err := crypto.DeriveKey(suite.KDF, r.A.Multiply(r.b))
			if err != nil {
				t.Fatal(err)
			}

			keys := [2][]byte{k0, k1}
			if !bytes.Equal(key, keys[choice]) {
				t.Fatalf("%s: receiver key does not match k%d", suite, choice)
			}
			if bytes.Equal(key, keys[1-choice]) {
				t.Fatalf("%s: receiver key matches k%d", suite, 1-choice)
			}
		}
	}
}

func TestReceiverPointFollowsChoice(t *testing.T) {
	for _, suite := range suites {
		s, r := newPair(t, suite, 0)
		if !r.B.Equal(s.g.Base(r.b)) {
			t.Fatalf("%s: choice 0, B != g^b", suite)
		}

		s, r = newPair(t, suite, 1)
		if !r.B.Equal(s.g.Base(r.b).Add(s.A)) {
			t.Fatalf("%s: choice 1, B != g^b + A", suite)
		}
	}
}

func TestSenderFinalizedTwice(t *testing.T) {
	s, r := newPair(t, DefaultSuite, 0)
	if _, _, err := s.Encrypt(r.PublicKey()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Encrypt(r.PublicKey()); !errors.Is(err, ErrSenderFinalized) {
		t.Fatalf("want ErrSenderFinalized, got %v", err)
	}
}

func TestSenderFinalizedAfterFailure(t *testing.T) {
	s, r := newPair(t, DefaultSuite, 0)
	if _, _, err := s.Encrypt([]byte("not a point")); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("want ErrInvalidPoint, got %v", err)
	}
	// no retry with the same secret
	if _, _, err := s.Encrypt(r.PublicKey()); !errors.Is(err, ErrSenderFinalized) {
		t.Fatalf("want ErrSenderFinalized, got %v", err)
	}
}

func TestSenderDiscardsSecrets(t *testing.T) {
	s, r := newPair(t, DefaultSuite, 1)
	if _, _, err := s.Encrypt(r.PublicKey()); err != nil {
		t.Fatal(err)
	}

	if s.messages[0] != nil || s.messages[1] != nil {
		t.Fatal("sender kept its plaintexts")
	}
	if !bytes.Equal(s.a.Encode(), make([]byte, len(s.a.Encode()))) {
		t.Fatal("sender kept its secret scalar")
	}
}

func TestReceiverFinalizedTwice(t *testing.T) {
	s, r := newPair(t, DefaultSuite, 1)
	c0, c1, err := s.Encrypt(r.PublicKey())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Decrypt(c0, c1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Decrypt(c0, c1); !errors.Is(err, ErrReceiverFinalized) {
		t.Fatalf("want ErrReceiverFinalized, got %v", err)
	}
}

func TestSenderRejectsItsOwnPoint(t *testing.T) {
	s, err := NewSender(prng, DefaultSuite, m0, m1)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Encrypt(s.PublicKey()); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("want ErrInvalidPoint, got %v", err)
	}
}

func TestNewSenderCopiesMessages(t *testing.T) {
	a := append([]byte(nil), m0...)
	b := append([]byte(nil), m1...)
	s, err := NewSender(prng, DefaultSuite, a, b)
	if err != nil {
		t.Fatal(err)
	}
	a[0], b[0] = 'X', 'X'

	r, err := NewReceiver(prng, DefaultSuite, s.PublicKey(), 0)
	if err != nil {
		t.Fatal(err)
	}
	c0, c1, err := s.Encrypt(r.PublicKey())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := r.Decrypt(c0, c1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, m0) {
		t.Fatalf("want: %s, got: %s", m0, got)
	}
}

func BenchmarkTransfer(b *testing.B) {
	for _, suite := range suites {
		b.Run(suite.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, _ := NewSender(prng, suite, m0, m1)
				r, _ := NewReceiver(prng, suite, s.PublicKey(), uint8(i&1))
				c0, c1, _ := s.Encrypt(r.PublicKey())
				r.Decrypt(c0, c1)
			}
		})
	}
}
