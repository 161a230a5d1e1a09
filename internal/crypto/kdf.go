package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/optable/ot/internal/group"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/hkdf"
)

const (
	// DeriveKeyContext separates the keys derived for the transfer from any
	// other use of the hash. Interoperating parties must use the same bytes.
	DeriveKeyContext = "Oblivious Transfer 11-16-2023"
	// KeySize is the length of every derived key
	KeySize = 32
)

// KDF selects the key derivation function
type KDF int

const (
	// KDFBlake3 is the BLAKE3 derive_key mode keyed by DeriveKeyContext
	KDFBlake3 KDF = iota
	// KDFHKDF is HKDF-SHA256 with DeriveKeyContext as info and no salt
	KDFHKDF
)

// DeriveKey returns a key of KeySize bytes from the canonical compressed
// encoding of point.
func DeriveKey(mode KDF, point group.Element) ([]byte, error) {
	key := make([]byte, KeySize)
	material := point.Encode()

	switch mode {
	case KDFBlake3:
		blake3.DeriveKey(DeriveKeyContext, material, key)
	case KDFHKDF:
		r := hkdf.New(sha256.New, material, nil, []byte(DeriveKeyContext))
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKDF, mode)
	}

	return key, nil
}

// ParseKDF returns the KDF called name
func ParseKDF(name string) (KDF, error) {
	for _, k := range []KDF{KDFBlake3, KDFHKDF} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKDF, name)
}

func (k KDF) String() string {
	switch k {
	case KDFBlake3:
		return "blake3"
	case KDFHKDF:
		return "hkdf-sha256"
	default:
		return "undefined"
	}
}
