package ot

import (
	"context"
	"fmt"
	"io"

	"github.com/optable/ot/internal/hash"
	"github.com/optable/ot/pkg/log"
	"github.com/zeebo/blake3"
)

var fingerprintSalt = func() []byte {
	s := blake3.Sum256([]byte("ot transcript fingerprint"))
	return s[:]
}()

// Transcript holds the values exchanged during one transfer, everything
// the sender observes.
type Transcript struct {
	A  []byte
	B  []byte
	C0 []byte
	C1 []byte
}

// fingerprint hashes
const (
	FingerprintMurmur3 = hash.Murmur3
	FingerprintMetro   = hash.Metro
	FingerprintHighway = hash.Highway
)

// ParseFingerprint returns the fingerprint hash called name
// (murmur3, metro or highway)
func ParseFingerprint(name string) (int, error) {
	return hash.Parse(name)
}

// Fingerprint returns a non cryptographic 64 bit identifier of the
// transcript, used to correlate the log lines of both parties.
func (t Transcript) Fingerprint() uint64 {
	f, err := t.FingerprintWith(FingerprintMurmur3)
	if err != nil {
		panic(err)
	}
	return f
}

// FingerprintWith is Fingerprint computed with the hash hashType. Both
// parties must agree on hashType to compare fingerprints.
func (t Transcript) FingerprintWith(hashType int) (uint64, error) {
	h, err := hash.New(hashType, fingerprintSalt)
	if err != nil {
		return 0, err
	}
	return h.Hash64(t.A, t.B, t.C0, t.C1), nil
}

// Result is the outcome of a transfer on the receiver side
type Result struct {
	Choice     uint8
	Guesses    Message
	Transcript Transcript
}

// Message returns the guess indexed by the choice bit
func (r Result) Message() []byte {
	return r.Guesses[r.Choice&1]
}

// Transfer runs both roles of a transfer in process: the sender is created
// with messages, the receiver answers the sender point with its choice,
// the sender encrypts and the receiver decrypts both ciphertexts.
// Both roles sample their secrets from rand, which must not be shared with
// concurrent transfers unless it is safe for concurrent use.
func Transfer(ctx context.Context, rand io.Reader, suite Suite, messages Message, choice uint8) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	logger := log.GetLoggerFromContextWithName(ctx, "transfer")
	logger.V(1).Info("starting transfer", "suite", suite.String())

	// sender creates secret a and A = g^a
	sender, err := NewSender(rand, suite, messages[0], messages[1])
	if err != nil {
		return Result{}, fmt.Errorf("sender init: %w", err)
	}
	t := Transcript{A: sender.PublicKey()}
	logger.V(2).Info("sender published its point")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// sender sends A, receiver generates B based on the choice bit
	receiver, err := NewReceiver(rand, suite, t.A, choice)
	if err != nil {
		return Result{}, fmt.Errorf("receiver init: %w", err)
	}
	t.B = receiver.PublicKey()
	logger.V(2).Info("receiver published its point")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// receiver sends B, sender encrypts both messages obliviously
	if t.C0, t.C1, err = sender.Encrypt(t.B); err != nil {
		return Result{}, fmt.Errorf("sender finalize: %w", err)
	}
	logger.V(2).Info("sender encrypted its messages", "len0", len(t.C0), "len1", len(t.C1))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// receiver decrypts both with the one key it can derive, A^b
	m0, m1, err := receiver.Decrypt(t.C0, t.C1)
	if err != nil {
		return Result{}, fmt.Errorf("receiver finalize: %w", err)
	}

	logger.V(1).Info("transfer complete", "transcript", fmt.Sprintf("%016x", t.Fingerprint()))
	return Result{Choice: choice, Guesses: Message{m0, m1}, Transcript: t}, nil
}
