package group

import (
	"io"

	r255 "github.com/gtank/ristretto255"
)

// "github.com/gtank/ristretto255"
type ristretto255Group struct{}

type r255Scalar struct {
	s *r255.Scalar
}

type r255Element struct {
	e *r255.Element
}

func (ristretto255Group) ID() ID { return Ristretto255 }

func (ristretto255Group) String() string { return Ristretto255.String() }

func (g ristretto255Group) Generator() Element {
	var one [ScalarLength]byte
	one[0] = 1
	s := r255.NewScalar()
	if err := s.Decode(one[:]); err != nil {
		panic(err)
	}
	return g.Base(&r255Scalar{s: s})
}

func (ristretto255Group) Base(s Scalar) Element {
	return &r255Element{e: r255.NewElement().ScalarBaseMult(castR255Scalar(s))}
}

func (ristretto255Group) RandomScalar(rand io.Reader) (Scalar, error) {
	buf, err := readUniform(rand)
	if err != nil {
		return nil, err
	}

	s := r255.NewScalar()
	s.FromUniformBytes(buf[:])
	return &r255Scalar{s: s}, nil
}

func (ristretto255Group) Decode(encoded []byte) (Element, error) {
	if len(encoded) != ElementLength {
		return nil, invalidPoint("expected %d bytes, got %d", ElementLength, len(encoded))
	}

	// Decode rejects non canonical encodings
	e := r255.NewElement()
	if err := e.Decode(encoded); err != nil {
		return nil, invalidPoint("%v", err)
	}

	el := &r255Element{e: e}
	if el.IsIdentity() {
		return nil, invalidPoint("identity element")
	}
	return el, nil
}

func (s *r255Scalar) Encode() []byte {
	return s.s.Encode(nil)
}

func (s *r255Scalar) Zero() {
	var zero [ScalarLength]byte
	if err := s.s.Decode(zero[:]); err != nil {
		panic(err)
	}
}

func (e *r255Element) Add(q Element) Element {
	return &r255Element{e: r255.NewElement().Add(e.e, castR255Element(q))}
}

func (e *r255Element) Subtract(q Element) Element {
	return &r255Element{e: r255.NewElement().Subtract(e.e, castR255Element(q))}
}

func (e *r255Element) Multiply(s Scalar) Element {
	return &r255Element{e: r255.NewElement().ScalarMult(castR255Scalar(s), e.e)}
}

func (e *r255Element) Equal(q Element) bool {
	return e.e.Equal(castR255Element(q)) == 1
}

func (e *r255Element) IsIdentity() bool {
	return e.e.Equal(r255.NewElement()) == 1
}

func (e *r255Element) Encode() []byte {
	return e.e.Encode(nil)
}

func castR255Scalar(s Scalar) *r255.Scalar {
	v, ok := s.(*r255Scalar)
	if !ok {
		panic(errMixedGroups)
	}
	return v.s
}

func castR255Element(e Element) *r255.Element {
	v, ok := e.(*r255Element)
	if !ok {
		panic(errMixedGroups)
	}
	return v.e
}
