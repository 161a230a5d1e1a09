package crypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/aead/chacha20/chacha"
	"github.com/optable/ot/internal/util"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

/*
Stream ciphers keyed by a derived point key. Every cipher is an XOR of a
keystream into the input, so encryption and decryption are the same
operation.
*/

// NonceSize is the length of the fixed all zero nonce. A key must never
// encrypt more than one message.
const NonceSize = 12

var (
	ErrUnknownCipher = errors.New("cannot use a cipher of unknown type")
	ErrUnknownKDF    = errors.New("cannot use a key derivation function of unknown type")
	ErrKeySize       = fmt.Errorf("key must be %d bytes", KeySize)
	ErrKeystream     = errors.New("cannot produce a keystream as long as the message")

	zeroNonce [NonceSize]byte
)

// Cipher selects the stream cipher
type Cipher int

const (
	// ChaCha8 is ChaCha reduced to 8 rounds with a 96 bit nonce
	ChaCha8 Cipher = iota
	// ChaCha20 is RFC 8439 ChaCha20
	ChaCha20
	// XORBlake3 xors the input with the XOF output of keyed BLAKE3
	XORBlake3
	// XORBlake2 xors the input with the XOF output of keyed BLAKE2b
	XORBlake2
)

// Encrypt returns src xored with the keystream of mode under key.
// src is never modified.
func Encrypt(mode Cipher, key, src []byte) (dst []byte, err error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}

	dst = make([]byte, len(src))
	switch mode {
	case ChaCha8:
		c, err := chacha.NewCipher(zeroNonce[:], key, 8)
		if err != nil {
			return nil, err
		}
		c.XORKeyStream(dst, src)
	case ChaCha20:
		c, err := chacha20.NewUnauthenticatedCipher(key, zeroNonce[:])
		if err != nil {
			return nil, err
		}
		c.XORKeyStream(dst, src)
	case XORBlake3:
		if err := blake3Keystream(key, dst); err != nil {
			return nil, err
		}
		util.Xor(dst, src)
	case XORBlake2:
		if err := blake2Keystream(key, dst); err != nil {
			return nil, err
		}
		util.Xor(dst, src)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, mode)
	}

	return dst, nil
}

// Decrypt is Encrypt
func Decrypt(mode Cipher, key, src []byte) ([]byte, error) {
	return Encrypt(mode, key, src)
}

// blake3Keystream fills dst with the keyed BLAKE3 XOF of the nonce
func blake3Keystream(key, dst []byte) error {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return err
	}
	h.Write(zeroNonce[:])

	// a Digest is a snapshot of the hash state that reads as an XOF
	_, err = io.ReadFull(h.Digest(), dst)
	return err
}

// blake2Keystream fills dst with the keyed BLAKE2b XOF of the nonce. The
// XOF is opened with an unknown output length so the keystream does not
// depend on len(dst); buffers past the XOF limit fail instead of being
// left partly unkeyed.
func blake2Keystream(key, dst []byte) error {
	x, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return err
	}
	x.Write(zeroNonce[:])
	if _, err = io.ReadFull(x, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrKeystream, err)
	}
	return nil
}

// ParseCipher returns the Cipher called name
func ParseCipher(name string) (Cipher, error) {
	for _, c := range []Cipher{ChaCha8, ChaCha20, XORBlake3, XORBlake2} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCipher, name)
}

func (c Cipher) String() string {
	switch c {
	case ChaCha8:
		return "chacha8"
	case ChaCha20:
		return "chacha20"
	case XORBlake3:
		return "blake3"
	case XORBlake2:
		return "blake2"
	default:
		return "undefined"
	}
}
