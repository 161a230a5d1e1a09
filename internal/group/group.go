package group

import (
	"errors"
	"fmt"
	"io"
)

/*
High level api over the prime order groups used by the oblivious transfer.
*/

const (
	// ElementLength is the length of the compressed encoding of an element
	// in every supported group.
	ElementLength = 32
	// ScalarLength is the length of an encoded scalar.
	ScalarLength = 32

	// uniformLength is the number of random bytes reduced into one scalar.
	uniformLength = 64
)

var (
	ErrUnknownGroup = errors.New("cannot create a group of unknown type")
	ErrRandomness   = errors.New("randomness source failed to provide a scalar")
	ErrInvalidPoint = errors.New("invalid group element encoding")

	errMixedGroups = errors.New("attempt to combine elements or scalars of different groups")
)

// ID identifies a group backend
type ID byte

const (
	// Edwards25519 is the prime order subgroup of the twisted Edwards form
	// of Curve25519. Elements use the compressed encoding of arkworks.
	Edwards25519 ID = 1 + iota
	// Ristretto255 is the ristretto group, github.com/gtank/ristretto255.
	Ristretto255
	// RistrettoGR is the ristretto group, github.com/bwesterb/go-ristretto.
	// It is byte for byte compatible with Ristretto255.
	RistrettoGR
)

// Scalar is an element of the scalar field of a group
type Scalar interface {
	// Encode returns the little endian canonical encoding of the scalar.
	Encode() []byte
	// Zero overwrites the scalar with zero.
	Zero()
}

// Element is an immutable element of a group. All operations return a
// new element.
type Element interface {
	Add(Element) Element
	Subtract(Element) Element
	Multiply(Scalar) Element
	Equal(Element) bool
	IsIdentity() bool
	// Encode returns the canonical compressed encoding of the element.
	Encode() []byte
}

// Group is a prime order group together with its scalar field
type Group interface {
	ID() ID
	String() string
	// Generator returns the fixed public generator g.
	Generator() Element
	// Base returns g^s.
	Base(s Scalar) Element
	// RandomScalar samples a uniform scalar from rand.
	RandomScalar(rand io.Reader) (Scalar, error)
	// Decode strictly decodes a peer provided element. Non canonical
	// encodings, elements outside the group and the identity are rejected.
	Decode(encoded []byte) (Element, error)
}

// New returns the group identified by id
func New(id ID) (Group, error) {
	switch id {
	case Edwards25519:
		return edwards25519Group{}, nil
	case Ristretto255:
		return ristretto255Group{}, nil
	case RistrettoGR:
		return goRistrettoGroup{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGroup, id)
	}
}

// Parse returns the ID of the group called name
func Parse(name string) (ID, error) {
	for _, id := range []ID{Edwards25519, Ristretto255, RistrettoGR} {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
}

func (id ID) String() string {
	switch id {
	case Edwards25519:
		return "edwards25519"
	case Ristretto255:
		return "ristretto255"
	case RistrettoGR:
		return "ristretto255-gr"
	default:
		return "undefined"
	}
}

// readUniform fills a 64 byte buffer from rand
func readUniform(rand io.Reader) (*[uniformLength]byte, error) {
	if rand == nil {
		return nil, fmt.Errorf("%w: nil source", ErrRandomness)
	}

	var buf [uniformLength]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return &buf, nil
}

func invalidPoint(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPoint, fmt.Sprintf(format, args...))
}
