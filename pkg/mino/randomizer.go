package mino

import (
	"math/rand"
)

// Randomizer picks catalog shapes uniformly at random. The same seed always
// yields the same sequence.
type Randomizer struct {
	Seed int64

	shapes []Shape
	r      *rand.Rand
}

func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{
		Seed:   seed,
		shapes: Catalog(),
		r:      rand.New(rand.NewSource(seed)),
	}
}

// NextType returns the catalog index of the next shape.
func (r *Randomizer) NextType() ShapeType {
	return ShapeType(r.r.Intn(len(r.shapes)))
}

func (r *Randomizer) Next() Shape {
	return r.shapes[r.NextType()]
}
