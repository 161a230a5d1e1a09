package group

import (
	"bytes"
	"io"

	gr "github.com/bwesterb/go-ristretto"
)

// "github.com/bwesterb/go-ristretto"
type goRistrettoGroup struct{}

type grScalar struct {
	s gr.Scalar
}

type grElement struct {
	p gr.Point
}

func (goRistrettoGroup) ID() ID { return RistrettoGR }

func (goRistrettoGroup) String() string { return RistrettoGR.String() }

func (goRistrettoGroup) Generator() Element {
	var e grElement
	e.p.SetBase()
	return &e
}

func (goRistrettoGroup) Base(s Scalar) Element {
	var e grElement
	e.p.ScalarMultBase(castGRScalar(s))
	return &e
}

func (goRistrettoGroup) RandomScalar(rand io.Reader) (Scalar, error) {
	buf, err := readUniform(rand)
	if err != nil {
		return nil, err
	}

	var s grScalar
	s.s.SetReduced(buf)
	return &s, nil
}

func (goRistrettoGroup) Decode(encoded []byte) (Element, error) {
	if len(encoded) != ElementLength {
		return nil, invalidPoint("expected %d bytes, got %d", ElementLength, len(encoded))
	}

	var buf [ElementLength]byte
	copy(buf[:], encoded)

	var e grElement
	if !e.p.SetBytes(&buf) {
		return nil, invalidPoint("not a ristretto encoding")
	}
	if !bytes.Equal(e.Encode(), encoded) {
		return nil, invalidPoint("non canonical encoding")
	}
	if e.IsIdentity() {
		return nil, invalidPoint("identity element")
	}
	return &e, nil
}

func (s *grScalar) Encode() []byte {
	return s.s.Bytes()
}

func (s *grScalar) Zero() {
	s.s.SetZero()
}

func (e *grElement) Add(q Element) Element {
	var r grElement
	r.p.Add(&e.p, castGRElement(q))
	return &r
}

func (e *grElement) Subtract(q Element) Element {
	var r grElement
	r.p.Sub(&e.p, castGRElement(q))
	return &r
}

func (e *grElement) Multiply(s Scalar) Element {
	var r grElement
	r.p.ScalarMult(&e.p, castGRScalar(s))
	return &r
}

func (e *grElement) Equal(q Element) bool {
	return e.p.Equals(castGRElement(q))
}

func (e *grElement) IsIdentity() bool {
	var zero gr.Point
	zero.SetZero()
	return e.p.Equals(&zero)
}

func (e *grElement) Encode() []byte {
	return e.p.Bytes()
}

func castGRScalar(s Scalar) *gr.Scalar {
	v, ok := s.(*grScalar)
	if !ok {
		panic(errMixedGroups)
	}
	return &v.s
}

func castGRElement(e Element) *gr.Point {
	v, ok := e.(*grElement)
	if !ok {
		panic(errMixedGroups)
	}
	return &v.p
}
