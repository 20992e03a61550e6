package grid

import "gridkit/pkg/geom"

type pointerGrid[T any] interface {
	Ptr(x, y int) *T
}

// Projection exposes one field of a grid of records as a grid of its own.
type Projection[R, F any] struct {
	src Grid[R]
	get func(R) F
	set func(*R, F)
}

// Project builds a projection of src. get reads the field from a record and
// set writes it; a nil set yields a read-only projection.
func Project[R, F any](src Grid[R], get func(R) F, set func(*R, F)) *Projection[R, F] {
	return &Projection[R, F]{src: src, get: get, set: set}
}

// Bounds returns the source's domain.
func (p *Projection[R, F]) Bounds() geom.Rect { return p.src.Bounds() }

// Valid reports the source's validity.
func (p *Projection[R, F]) Valid() bool { return p.src != nil && p.src.Valid() }

// Source returns the record grid.
func (p *Projection[R, F]) Source() Grid[R] { return p.src }

// At returns the projected field of the record at (x, y).
func (p *Projection[R, F]) At(x, y int) F {
	return p.get(p.src.At(x, y))
}

// Set writes the projected field of the record at (x, y), leaving the other
// fields untouched. Sources with a Ptr method are updated in place.
func (p *Projection[R, F]) Set(x, y int, v F) {
	if p.set == nil {
		panic(ErrReadOnly)
	}
	if pg, ok := p.src.(pointerGrid[R]); ok {
		p.set(pg.Ptr(x, y), v)
		return
	}
	rec := p.src.At(x, y)
	p.set(&rec, v)
	p.src.Set(x, y, rec)
}
