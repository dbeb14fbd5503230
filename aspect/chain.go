package aspect

import (
	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"
)

// Chain is an ordered collection of advice. Advice added first runs first.
// The zero value is an empty chain ready to use.
//
// Chain is not safe for mutation concurrent with a call of the Wrapped that
// owns it; callers have to serialize that themselves.
type Chain[F any] struct {
	advices []F
}

// Append adds advices to the end of the chain.
func (c *Chain[F]) Append(advices ...F) {
	c.advices = append(c.advices, advices...)
}

// Prepend adds advices to the beginning of the chain.
func (c *Chain[F]) Prepend(advices ...F) {
	c.advices = slices.Insert(slices.Clip(c.advices), 0, advices...)
}

// Insert inserts advices at index i, 0 <= i <= Len.
func (c *Chain[F]) Insert(i int, advices ...F) error {
	if i < 0 || i > len(c.advices) {
		return ErrIndexOutOfRange
	}
	c.advices = slices.Insert(slices.Clip(c.advices), i, advices...)
	return nil
}

// Remove removes the advice at index i.
func (c *Chain[F]) Remove(i int) error {
	if i < 0 || i >= len(c.advices) {
		return ErrIndexOutOfRange
	}
	c.advices = slicex.DeleteAll(c.advices, i)
	return nil
}

// Clear removes all advices.
func (c *Chain[F]) Clear() {
	c.advices = nil
}

// Len returns the number of advices.
func (c *Chain[F]) Len() int {
	return len(c.advices)
}

// List returns a copy of the advices.
func (c *Chain[F]) List() []F {
	return slices.Clone(c.advices)
}
