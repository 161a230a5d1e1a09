package group

import (
	"bytes"
	"io"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// signBit flags a negative x coordinate in the compressed encoding
const signBit = 0x80

var (
	// scalar l - 1, used to check membership in the prime order subgroup
	orderMinusOne = func() *edwards25519.Scalar {
		one, err := edwards25519.NewScalar().SetCanonicalBytes(append([]byte{1}, make([]byte, ScalarLength-1)...))
		if err != nil {
			panic(err)
		}
		return edwards25519.NewScalar().Subtract(edwards25519.NewScalar(), one)
	}()
)

type edwards25519Group struct{}

type edwardsScalar struct {
	s *edwards25519.Scalar
}

type edwardsElement struct {
	p *edwards25519.Point
}

func (edwards25519Group) ID() ID { return Edwards25519 }

func (edwards25519Group) String() string { return Edwards25519.String() }

func (edwards25519Group) Generator() Element {
	return &edwardsElement{p: edwards25519.NewGeneratorPoint()}
}

func (edwards25519Group) Base(s Scalar) Element {
	return &edwardsElement{p: new(edwards25519.Point).ScalarBaseMult(castEdwardsScalar(s))}
}

func (edwards25519Group) RandomScalar(rand io.Reader) (Scalar, error) {
	buf, err := readUniform(rand)
	if err != nil {
		return nil, err
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return nil, err
	}
	return &edwardsScalar{s: s}, nil
}

// Decode reverses Encode. The sign of x is recovered by decoding with the
// RFC 8032 rule and negating the point when the arkworks flag disagrees.
func (edwards25519Group) Decode(encoded []byte) (Element, error) {
	if len(encoded) != ElementLength {
		return nil, invalidPoint("expected %d bytes, got %d", ElementLength, len(encoded))
	}

	buf := make([]byte, ElementLength)
	copy(buf, encoded)
	negative := buf[ElementLength-1]&signBit != 0
	buf[ElementLength-1] &^= signBit

	p, err := new(edwards25519.Point).SetBytes(buf)
	if err != nil {
		return nil, invalidPoint("%v", err)
	}

	x, _ := affine(p)
	if isNegative(x) != negative {
		p.Negate(p)
	}

	e := &edwardsElement{p: p}
	if !bytes.Equal(e.Encode(), encoded) {
		return nil, invalidPoint("non canonical encoding")
	}

	// l * P == identity iff P is in the prime order subgroup
	t := new(edwards25519.Point).ScalarMult(orderMinusOne, p)
	t.Add(t, p)
	if t.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return nil, invalidPoint("element has a torsion component")
	}

	if e.IsIdentity() {
		return nil, invalidPoint("identity element")
	}

	return e, nil
}

func (s *edwardsScalar) Encode() []byte {
	return s.s.Bytes()
}

func (s *edwardsScalar) Zero() {
	s.s.Set(edwards25519.NewScalar())
}

func (e *edwardsElement) Add(q Element) Element {
	return &edwardsElement{p: new(edwards25519.Point).Add(e.p, castEdwardsElement(q))}
}

func (e *edwardsElement) Subtract(q Element) Element {
	return &edwardsElement{p: new(edwards25519.Point).Subtract(e.p, castEdwardsElement(q))}
}

func (e *edwardsElement) Multiply(s Scalar) Element {
	return &edwardsElement{p: new(edwards25519.Point).ScalarMult(castEdwardsScalar(s), e.p)}
}

func (e *edwardsElement) Equal(q Element) bool {
	return e.p.Equal(castEdwardsElement(q)) == 1
}

func (e *edwardsElement) IsIdentity() bool {
	return e.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Encode returns y in little endian with the top bit set when
// x > (p-1)/2, the compressed form arkworks uses for twisted Edwards
// points.
func (e *edwardsElement) Encode() []byte {
	x, y := affine(e.p)
	out := y.Bytes()
	if isNegative(x) {
		out[ElementLength-1] |= signBit
	}
	return out
}

// affine returns the affine coordinates of p
func affine(p *edwards25519.Point) (x, y *field.Element) {
	X, Y, Z, _ := p.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x = new(field.Element).Multiply(X, zInv)
	y = new(field.Element).Multiply(Y, zInv)
	return
}

// isNegative reports whether x > -x when both are read as canonical
// integers, that is x > (p-1)/2.
func isNegative(x *field.Element) bool {
	a := x.Bytes()
	b := new(field.Element).Negate(x).Bytes()
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func castEdwardsScalar(s Scalar) *edwards25519.Scalar {
	v, ok := s.(*edwardsScalar)
	if !ok {
		panic(errMixedGroups)
	}
	return v.s
}

func castEdwardsElement(e Element) *edwards25519.Point {
	v, ok := e.(*edwardsElement)
	if !ok {
		panic(errMixedGroups)
	}
	return v.p
}
